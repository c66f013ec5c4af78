// internal/domain/models/sitesettings.go
package models

// SiteSettings holds the lab-wide copy shared by the layout, the hero, and
// the contact block. It is loaded with the rest of the content and never
// edited at runtime.
type SiteSettings struct {
	SiteName    string `yaml:"site_name" bson:"site_name" json:"site_name"`
	ShortName   string `yaml:"short_name" bson:"short_name" json:"short_name"`
	Affiliation string `yaml:"affiliation" bson:"affiliation" json:"affiliation"`
	University  string `yaml:"university" bson:"university" json:"university"`

	// Hero
	HeroKicker string `yaml:"hero_kicker" bson:"hero_kicker" json:"hero_kicker"`
	HeroLead   string `yaml:"hero_lead" bson:"hero_lead" json:"hero_lead"`
	HeroVideo  string `yaml:"hero_video,omitempty" bson:"hero_video,omitempty" json:"hero_video,omitempty"`

	// Landing section intros
	ResearchIntro string `yaml:"research_intro" bson:"research_intro" json:"research_intro"`

	// Contact
	ContactIntro string `yaml:"contact_intro" bson:"contact_intro" json:"contact_intro"`
	Address      string `yaml:"address" bson:"address" json:"address"`
	Email        string `yaml:"email" bson:"email" json:"email"`
	MapEmbedURL  string `yaml:"map_embed_url" bson:"map_embed_url" json:"map_embed_url"`
	MapLinkURL   string `yaml:"map_link_url" bson:"map_link_url" json:"map_link_url"`
	LogoURL      string `yaml:"logo_url,omitempty" bson:"logo_url,omitempty" json:"logo_url,omitempty"`

	// Landing statistics strip
	Stats []PublicationStat `yaml:"stats" bson:"stats" json:"stats"`
}

// DefaultSiteName is used when the settings document leaves the name blank.
const DefaultSiteName = "Flexible Electronic Device Lab"
