package engine

import (
	"reflect"
	"testing"
)

func TestSetActiveServerClearsActiveChannel(t *testing.T) {
	u := NewUIIntent(nil)
	u.SetActiveServer("s1")
	u.SetActiveChannel("general")

	u.SetActiveServer("s2")

	if u.ActiveServer() != "s2" {
		t.Fatalf("expected active server s2, got %q", u.ActiveServer())
	}
	if u.ActiveChannel() != "" {
		t.Fatalf("expected active channel cleared, got %q", u.ActiveChannel())
	}
}

func TestSetActiveThreadIDTogglesThreadPanel(t *testing.T) {
	u := NewUIIntent(nil)

	u.SetActiveThreadID("t1")
	if !u.ShowThreadPanel() {
		t.Fatalf("expected thread panel shown after setting a thread id")
	}

	u.SetActiveThreadID("")
	if u.ShowThreadPanel() {
		t.Fatalf("expected thread panel hidden after clearing thread id")
	}
}

func TestServerFoldersReturnsStableEmptySentinel(t *testing.T) {
	u := NewUIIntent(nil)

	a := u.ServerFolders()
	b := u.ServerFolders()
	if len(a) != 0 || len(b) != 0 {
		t.Fatalf("expected empty folders")
	}
	if reflect.ValueOf(a).Pointer() != reflect.ValueOf(b).Pointer() {
		t.Fatal("two reads of empty folders must return the identical sentinel slice")
	}
}

func TestUpsertServerFolderInsertsThenReplaces(t *testing.T) {
	var persisted []Folder
	u := NewUIIntent(func(f []Folder) { persisted = f })

	u.UpsertServerFolder(Folder{ID: "f1", Name: "Work"})
	if len(u.ServerFolders()) != 1 {
		t.Fatalf("expected 1 folder after insert, got %d", len(u.ServerFolders()))
	}
	if len(persisted) != 1 {
		t.Fatalf("expected persist callback invoked with 1 folder, got %d", len(persisted))
	}

	u.UpsertServerFolder(Folder{ID: "f1", Name: "Work Renamed"})
	folders := u.ServerFolders()
	if len(folders) != 1 || folders[0].Name != "Work Renamed" {
		t.Fatalf("expected folder f1 replaced in place, got %+v", folders)
	}
}

func TestRemoveServerFolder(t *testing.T) {
	u := NewUIIntent(nil)
	u.UpsertServerFolder(Folder{ID: "f1"})
	u.UpsertServerFolder(Folder{ID: "f2"})

	u.RemoveServerFolder("f1")

	folders := u.ServerFolders()
	if len(folders) != 1 || folders[0].ID != "f2" {
		t.Fatalf("expected only f2 to remain, got %+v", folders)
	}
}

func TestCollapsedCategoryToggle(t *testing.T) {
	u := NewUIIntent(nil)
	if u.IsCategoryCollapsed("c1") {
		t.Fatalf("expected category not collapsed by default")
	}

	u.SetCollapsedCategory("c1", true)
	if !u.IsCategoryCollapsed("c1") {
		t.Fatalf("expected category collapsed")
	}

	u.SetCollapsedCategory("c1", false)
	if u.IsCategoryCollapsed("c1") {
		t.Fatalf("expected category expanded again")
	}
}
