// Package searchindex defines the site search index and reads and writes
// the single JSON file it is stored in.
package searchindex

// Category is the closed set of entry kinds.
type Category string

const (
	CategoryBlog     Category = "Blog"
	CategoryPage     Category = "Page"
	CategoryResearch Category = "Research"
)

// Heading levels a Section may have.
const (
	LevelTop    = 2
	LevelNested = 3
)

// Section is one heading-demarcated block inside an Entry.
type Section struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Level    int    `json:"level"`
	ParentID string `json:"parentId,omitempty"` // only set on level 3
}

// Entry is one page or blog post in the index.
type Entry struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Description string    `json:"description,omitempty"`
	Category    Category  `json:"category"`
	Content     string    `json:"content,omitempty"`
	Sections    []Section `json:"sections,omitempty"`
}

// SectionByID returns the section with the given id, or nil.
func (e *Entry) SectionByID(id string) *Section {
	for i := range e.Sections {
		if e.Sections[i].ID == id {
			return &e.Sections[i]
		}
	}
	return nil
}
