package site

import "path/filepath"

// Layout holds the fixed paths of a site checkout.
type Layout struct {
	Root      string
	AppDir    string // src/app
	BlogDir   string // src/app/blog
	PublicDir string
	IndexFile string // public/search-index.json
}

// NewLayout returns the layout rooted at root.
func NewLayout(root string) Layout {
	app := filepath.Join(root, "src", "app")
	public := filepath.Join(root, "public")
	return Layout{
		Root:      root,
		AppDir:    app,
		BlogDir:   filepath.Join(app, "blog"),
		PublicDir: public,
		IndexFile: filepath.Join(public, "search-index.json"),
	}
}
