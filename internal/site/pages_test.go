package site

import "testing"

func TestDefaultPages(t *testing.T) {
	pages, err := DefaultPages()
	if err != nil {
		t.Fatalf("DefaultPages() error = %v", err)
	}

	wantURLs := []string{"/research", "/experience", "/projects", "/contact", "/blog", "/"}
	if len(pages) != len(wantURLs) {
		t.Fatalf("DefaultPages() returned %d pages, want %d", len(pages), len(wantURLs))
	}
	for i, url := range wantURLs {
		if pages[i].URL != url {
			t.Errorf("pages[%d].URL = %q, want %q", i, pages[i].URL, url)
		}
	}

	if pages[0].Papers == nil || pages[0].Papers.Array != "newsItems" {
		t.Errorf("research page should list papers, got %+v", pages[0].Papers)
	}
	if pages[5].Title != "Bio" {
		t.Errorf("home page title = %q, want Bio", pages[5].Title)
	}
}

func TestLoadPages(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
		wantLen int
	}{
		{
			name:    "valid",
			data:    "pages:\n  - name: A\n    file: a/page.tsx\n    url: /a\n",
			wantLen: 1,
		},
		{
			name:    "missing url",
			data:    "pages:\n  - name: A\n    file: a/page.tsx\n",
			wantErr: true,
		},
		{
			name:    "unknown field",
			data:    "pages:\n  - name: A\n    file: a/page.tsx\n    url: /a\n    weight: 3\n",
			wantErr: true,
		},
		{
			name:    "incomplete papers",
			data:    "pages:\n  - name: A\n    file: a/page.tsx\n    url: /a\n    papers:\n      file: x.tsx\n",
			wantErr: true,
		},
		{
			name:    "not yaml",
			data:    "pages: [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages, err := LoadPages([]byte(tt.data))
			if tt.wantErr {
				if err == nil {
					t.Error("LoadPages() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadPages() error = %v", err)
			}
			if len(pages) != tt.wantLen {
				t.Errorf("LoadPages() returned %d pages, want %d", len(pages), tt.wantLen)
			}
		})
	}
}
