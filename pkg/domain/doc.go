// Package domain contains the entities exchanged with the registrar and
// generation APIs (availability, contacts, registrations, DNS records, brand
// identities), the provisioning workflow state and the Result envelope
// returned at the outer boundary. The types are free of infrastructure
// concerns so they can be shared across packages.
package domain
