package model

import "testing"

func TestSiteInfoProperty(t *testing.T) {
	t.Parallel()

	info := &SiteInfo{Generator: "MediaWiki 1.41.0", DBType: "mysql"}

	t.Run("every wiki property is present", func(t *testing.T) {
		t.Parallel()
		for _, name := range WikiProperties() {
			if _, ok := info.Property(name); !ok {
				t.Errorf("expected property %q to be present", name)
			}
		}
	})

	t.Run("returns stored value", func(t *testing.T) {
		t.Parallel()
		v, _ := info.Property(PropGenerator)
		if v != "MediaWiki 1.41.0" {
			t.Errorf("expected generator 'MediaWiki 1.41.0', got %q", v)
		}
	})

	t.Run("missing value is empty string", func(t *testing.T) {
		t.Parallel()
		v, ok := info.Property(PropGitHash)
		if !ok || v != "" {
			t.Errorf("expected present empty git-hash, got %q (present=%v)", v, ok)
		}
	})

	t.Run("unknown property is absent", func(t *testing.T) {
		t.Parallel()
		if _, ok := info.Property("version"); ok {
			t.Error("expected extension property to be absent on SiteInfo")
		}
	})
}

func TestSiteInfoSetProperty(t *testing.T) {
	t.Parallel()

	var info SiteInfo
	for _, name := range WikiProperties() {
		if !info.SetProperty(name, name+"-value") {
			t.Fatalf("SetProperty(%q) returned false", name)
		}
	}
	for _, name := range WikiProperties() {
		if v, _ := info.Property(name); v != name+"-value" {
			t.Errorf("property %q: expected %q, got %q", name, name+"-value", v)
		}
	}
	if info.SetProperty("bogus", "x") {
		t.Error("expected SetProperty to reject unknown name")
	}
}

func TestExtensionInfoProperty(t *testing.T) {
	t.Parallel()

	ext := NewExtensionInfo(map[string]string{
		PropVersion:   "1.0",
		PropVCSSystem: "",
		"url":         "ignored",
	})

	t.Run("present value", func(t *testing.T) {
		t.Parallel()
		v, ok := ext.Property(PropVersion)
		if !ok || v != "1.0" {
			t.Errorf("expected version 1.0, got %q (present=%v)", v, ok)
		}
	})

	t.Run("present empty value", func(t *testing.T) {
		t.Parallel()
		v, ok := ext.Property(PropVCSSystem)
		if !ok || v != "" {
			t.Errorf("expected present empty vcs-system, got %q (present=%v)", v, ok)
		}
	})

	t.Run("absent value", func(t *testing.T) {
		t.Parallel()
		if _, ok := ext.Property(PropVCSDate); ok {
			t.Error("expected vcs-date to be absent")
		}
	})
}

func TestSharedExtensionCount(t *testing.T) {
	t.Parallel()

	info := &SiteInfo{ExtensionCount: 5, UniqueExtensionCount: 2}
	if got := info.SharedExtensionCount(); got != 3 {
		t.Errorf("expected 3 shared extensions, got %d", got)
	}
}

func TestSideString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		side Side
		want string
	}{
		{SideLeft, "left"},
		{SideRight, "right"},
		{Side(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.side.String(); got != tt.want {
			t.Errorf("Side(%d).String() = %q, want %q", tt.side, got, tt.want)
		}
	}
}
