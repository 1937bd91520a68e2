// Package seeds loads demo fixture data from a yaml file into the
// database. Rows are keyed on their unique columns so reseeding is
// idempotent.
package seeds

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"helpdesk/internal/domain/identity"
	"helpdesk/internal/infrastructure/persistence/models"
)

type OrganizationSeed struct {
	Name string `yaml:"name"`
	Slug string `yaml:"slug"`
}

type ProfileSeed struct {
	Subject          string `yaml:"subject"`
	OrganizationSlug string `yaml:"organization_slug"`
	FullName         string `yaml:"full_name"`
	Email            string `yaml:"email"`
	Role             string `yaml:"role"`
}

type TicketSeed struct {
	OrganizationSlug string   `yaml:"organization_slug"`
	Title            string   `yaml:"title"`
	Description      string   `yaml:"description"`
	Category         string   `yaml:"category"`
	Status           string   `yaml:"status"`
	Priority         string   `yaml:"priority"`
	CreatedBySubject string   `yaml:"created_by_subject"`
	TicketCode       string   `yaml:"ticket_code"`
	Tags             []string `yaml:"tags"`
}

type SeedFile struct {
	Organizations []OrganizationSeed `yaml:"organizations"`
	Profiles      []ProfileSeed      `yaml:"profiles"`
	Tickets       []TicketSeed       `yaml:"tickets"`
}

// LoadFromFile parses a yaml seed fixture.
func LoadFromFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var file SeedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	return &file, nil
}

// Apply inserts the seed rows. Existing rows with the same unique keys
// are left untouched.
func Apply(db *gorm.DB, file *SeedFile) error {
	orgIDs := make(map[string]uint)
	for _, seed := range file.Organizations {
		org := models.OrganizationModel{Name: seed.Name, Slug: seed.Slug}
		if err := db.FirstOrCreate(&org, models.OrganizationModel{Slug: seed.Slug}).Error; err != nil {
			return fmt.Errorf("failed to seed organization %s: %w", seed.Slug, err)
		}
		orgIDs[seed.Slug] = org.ID
	}

	profileIDs := make(map[string]uint)
	for _, seed := range file.Profiles {
		orgID, ok := orgIDs[seed.OrganizationSlug]
		if !ok {
			return fmt.Errorf("profile %s references unknown organization %s", seed.Subject, seed.OrganizationSlug)
		}

		profile := models.ProfileModel{
			Subject:        seed.Subject,
			OrganizationID: &orgID,
			FullName:       seed.FullName,
			FullNameNorm:   identity.NormalizeFullName(seed.FullName),
			Email:          seed.Email,
			Role:           seed.Role,
			IsActive:       true,
		}
		if err := db.FirstOrCreate(&profile, models.ProfileModel{Subject: seed.Subject}).Error; err != nil {
			return fmt.Errorf("failed to seed profile %s: %w", seed.Subject, err)
		}
		profileIDs[seed.Subject] = profile.ID
	}

	for _, seed := range file.Tickets {
		orgID, ok := orgIDs[seed.OrganizationSlug]
		if !ok {
			return fmt.Errorf("ticket %q references unknown organization %s", seed.Title, seed.OrganizationSlug)
		}
		ticket := models.TicketModel{
			OrganizationID: orgID,
			Title:          seed.Title,
			Description:    seed.Description,
			Category:       seed.Category,
			Status:         seed.Status,
			Priority:       seed.Priority,
		}
		// An omitted creator seeds an anonymous ticket, reachable only
		// through its ticket code.
		if seed.CreatedBySubject != "" {
			creatorID, ok := profileIDs[seed.CreatedBySubject]
			if !ok {
				return fmt.Errorf("ticket %q references unknown profile %s", seed.Title, seed.CreatedBySubject)
			}
			ticket.CreatedBy = &creatorID
		}
		if seed.TicketCode != "" {
			code := seed.TicketCode
			ticket.TicketCode = &code
		}
		if len(seed.Tags) > 0 {
			tags, err := yamlTagsToJSON(seed.Tags)
			if err != nil {
				return fmt.Errorf("failed to encode tags for ticket %q: %w", seed.Title, err)
			}
			ticket.Tags = tags
		}

		where := models.TicketModel{OrganizationID: orgID, Title: seed.Title}
		if err := db.FirstOrCreate(&ticket, where).Error; err != nil {
			return fmt.Errorf("failed to seed ticket %q: %w", seed.Title, err)
		}
	}

	return nil
}

func yamlTagsToJSON(tags []string) (datatypes.JSON, error) {
	data, err := json.Marshal(tags)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(data), nil
}
