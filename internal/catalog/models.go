package catalog

// Payload models for the three document kinds shared on the platform.
// Binding tags drive write-path validation in the handlers; bson tags define
// how a validated payload is persisted. Reads do not go through these types —
// stored documents are returned as-is (see Serialize).

// Dataset is an open dataset shared by the community. Collection: "dataset".
type Dataset struct {
	Name        string   `json:"name" bson:"name" binding:"required"`
	Description string   `json:"description" bson:"description" binding:"required"`
	URL         string   `json:"url" bson:"url" binding:"required,url"`
	RepoURL     string   `json:"repo_url,omitempty" bson:"repo_url,omitempty" binding:"omitempty,url"`
	License     string   `json:"license,omitempty" bson:"license,omitempty"`
	Maintainer  string   `json:"maintainer,omitempty" bson:"maintainer,omitempty"`
	SizeMB      *float64 `json:"size_mb,omitempty" bson:"size_mb,omitempty" binding:"omitempty,gte=0"`
	Tags        []string `json:"tags" bson:"tags"`
}

// Tool is an open source tool or library. Collection: "tool".
type Tool struct {
	Name        string   `json:"name" bson:"name" binding:"required"`
	Description string   `json:"description" bson:"description" binding:"required"`
	RepoURL     string   `json:"repo_url" bson:"repo_url" binding:"required,url"`
	HomepageURL string   `json:"homepage_url,omitempty" bson:"homepage_url,omitempty" binding:"omitempty,url"`
	License     string   `json:"license,omitempty" bson:"license,omitempty"`
	Tags        []string `json:"tags" bson:"tags"`
}

// Snippet is a reusable code snippet or example notebook. Collection: "snippet".
type Snippet struct {
	Title       string   `json:"title" bson:"title" binding:"required"`
	Description string   `json:"description" bson:"description" binding:"required"`
	Language    string   `json:"language" bson:"language" binding:"required"`
	Code        string   `json:"code" bson:"code" binding:"required"`
	RepoURL     string   `json:"repo_url,omitempty" bson:"repo_url,omitempty" binding:"omitempty,url"`
	Tags        []string `json:"tags" bson:"tags"`
}

// Normalize enforces the write-path invariant that tags is always a list.
func (d *Dataset) Normalize() {
	if d.Tags == nil {
		d.Tags = []string{}
	}
}

func (t *Tool) Normalize() {
	if t.Tags == nil {
		t.Tags = []string{}
	}
}

func (s *Snippet) Normalize() {
	if s.Tags == nil {
		s.Tags = []string{}
	}
}

// Kind describes a document kind: the collection it lives in, whether its
// listings accept a language filter, and the fields covered by free-text search.
type Kind struct {
	Name           string
	Collection     string
	TextFields     []string
	LanguageFilter bool
}

var (
	DatasetKind = Kind{Name: "dataset", Collection: "dataset", TextFields: []string{"name", "description"}}
	ToolKind    = Kind{Name: "tool", Collection: "tool", TextFields: []string{"name", "description"}}
	SnippetKind = Kind{Name: "snippet", Collection: "snippet", TextFields: []string{"title", "description", "code"}, LanguageFilter: true}
)
