package config

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/dono-tools/receipt-atlas/pkg/store/qbo"
)

// Profile is one QuickBooks connection from the profiles file.
type Profile struct {
	Name    string
	RealmID string
}

// Registry resolves named QuickBooks connection profiles into client
// configs. Profiles live in an ini file, one section per connection:
//
//	[acme]
//	realm_id = 1234567890
//	access_token = ...
//	base_url = https://quickbooks.api.intuit.com
type Registry interface {
	GetProfiles(ctx context.Context) ([]Profile, error)
	GetConfig(ctx context.Context, profile string) (*qbo.Config, string, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]Profile, error) {
	var profiles []Profile
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		profiles = append(profiles, Profile{
			Name:    section.Name(),
			RealmID: section.Key("realm_id").String(),
		})
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetConfig(_ context.Context, profile string) (*qbo.Config, string, error) {
	section, err := cr.cfg.GetSection(profile)
	if err != nil {
		return nil, "", fmt.Errorf("profile %s not found", profile)
	}

	realmID := section.Key("realm_id").String()
	if realmID == "" {
		return nil, "", fmt.Errorf("profile %s has no realm_id", profile)
	}

	cfg := &qbo.Config{
		BaseURL:     section.Key("base_url").String(),
		AccessToken: section.Key("access_token").String(),
		PageSize:    section.Key("page_size").MustInt(0),
	}
	return cfg, realmID, nil
}
