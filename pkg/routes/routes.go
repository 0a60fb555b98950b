// Package routes centralizes every navigable view path, per role.
// The cache invalidation graph references these constants, so adding a
// page that reads an entity means adding one edge in internal/cache,
// not hunting through action code.
package routes

const (
	AdminDashboard      = "/admin/dashboard"
	AdminEvents         = "/admin/evenements"
	AdminEventDetail    = "/admin/evenements/detail"
	AdminEventCreate    = "/admin/evenements/creer"
	AdminEventEdit      = "/admin/evenements/modifier"
	AdminCustomers      = "/admin/clients"
	AdminCustomerDetail = "/admin/clients/detail"
	AdminCustomerCreate = "/admin/clients/creer"
	AdminCustomerEdit   = "/admin/clients/modifier"
	AdminOrganizers     = "/admin/organisateurs"
	AdminOrganizerEdit  = "/admin/organisateurs/modifier"
	AdminEventTypes     = "/admin/types-evenement"
	AdminGallery        = "/admin/galerie"

	OrganizerDashboard = "/organisateur/dashboard"
	OrganizerEvents    = "/organisateur/evenements"

	OperatorAdmission = "/operateur/admission"

	ParticipantEvents = "/participant/evenements"
)
