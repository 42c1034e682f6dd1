package contact

import (
	"github.com/dalemusser/campaigngen/internal/app/system/settings"
	"github.com/dalemusser/campaigngen/internal/domain/models"
)

// entries are the static contacts. The first entry is the TOS support desk,
// whose e-mail, phone and hours come from runtime settings when provided.
var entries = []models.ContactEntry{
	{
		Team:  "Campaign Generator Support (TOS)",
		Email: "",
		Phone: "",
	},
	{
		Team:  "Campaign Operations",
		Email: "campaign-ops@usbank.com",
	},
	{
		Team:  "Web1 Reporting",
		Email: "web1-reporting@usbank.com",
	},
}

// Contacts returns the contact list with the support entry filled from rt.
func Contacts(rt settings.Runtime) []models.ContactEntry {
	out := make([]models.ContactEntry, len(entries))
	copy(out, entries)

	support := &out[0]
	if rt.ContactEmail != "" {
		support.Email = rt.ContactEmail
	}
	if rt.ContactPhone != "" {
		support.Phone = rt.ContactPhone
	}
	support.Hours = rt.SupportHours
	return out
}
