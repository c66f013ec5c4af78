// internal/domain/models/research.go
package models

import "html/template"

// ResearchTopic identifies one of the lab's research pillars. The value is
// the slug used in URLs and in the "research-<topic>" anchor fragment.
type ResearchTopic string

const (
	Topic2DMaterials         ResearchTopic = "2d-materials"
	TopicFlexibleElectronics ResearchTopic = "high-performance-flexible-electronics"
	TopicNeuralInterfaces    ResearchTopic = "neural-sensors-and-brain-computer-interfaces"
)

// ResearchTopics lists the pillars in display order.
var ResearchTopics = []ResearchTopic{
	Topic2DMaterials,
	TopicFlexibleElectronics,
	TopicNeuralInterfaces,
}

// Valid reports whether t is one of the fixed research topics.
func (t ResearchTopic) Valid() bool {
	for _, v := range ResearchTopics {
		if v == t {
			return true
		}
	}
	return false
}

// ResearchArea is a landing-page research card plus its detail page.
type ResearchArea struct {
	ID          string          `yaml:"id" bson:"id" json:"id"`
	Topic       ResearchTopic   `yaml:"topic" bson:"topic" json:"topic"`
	Title       string          `yaml:"title" bson:"title" json:"title"`
	Description string          `yaml:"description" bson:"description" json:"description"`
	Icon        string          `yaml:"icon" bson:"icon" json:"icon"` // Layers, Zap, Brain
	DetailTitle string          `yaml:"detail_title" bson:"detail_title" json:"detail_title"`
	Sections    []ResearchBlock `yaml:"sections" bson:"sections" json:"sections"`
}

// ResearchBlock is one titled section on a research detail page.
// Body is markdown; BodyHTML is filled in when the content store is built.
type ResearchBlock struct {
	Title    string        `yaml:"title" bson:"title" json:"title"`
	Body     string        `yaml:"body" bson:"body" json:"body"`
	Image    string        `yaml:"image" bson:"image" json:"image"`
	ImageAlt string        `yaml:"image_alt" bson:"image_alt" json:"image_alt"`
	Caption  string        `yaml:"caption,omitempty" bson:"caption,omitempty" json:"caption,omitempty"`
	BodyHTML template.HTML `yaml:"-" bson:"-" json:"-"`
}
