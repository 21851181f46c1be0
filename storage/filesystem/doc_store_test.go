package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

const docXML = `<command id="%s">
  <tokens><token id="1" lemma="go" pos="VB" surface="go"/></tokens>
  <dependencies><dep from="0" to="1" type="root"/></dependencies>
  <semantics><frameSemantics>
    <frame name="Motion"><lexicalUnit><token id="1"/></lexicalUnit></frame>
  </frameSemantics></semantics>
</command>`

func writeDoc(t *testing.T, dir, name, id string) {
	t.Helper()
	data := []byte(fmt.Sprintf(docXML, id))
	if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDocStoreListSorted(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "20.xml", "20")
	writeDoc(t, dir, "100.xml", "100")
	writeDoc(t, dir, "3.xml", "3")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}

	store, err := NewDocStore(dir)
	if err != nil {
		t.Fatalf("NewDocStore: %v", err)
	}

	docs, err := store.List()
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"100.xml", "20.xml", "3.xml"}
	if len(docs) != len(want) {
		t.Fatalf("expected %d docs, got %d", len(want), len(docs))
	}

	for i, d := range docs {
		if d.Title != want[i] {
			t.Errorf("doc %d: got %s, want %s", i, d.Title, want[i])
		}
	}
}

func TestDocStoreRead(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "20.xml", "20")

	store, err := NewDocStore(dir)
	if err != nil {
		t.Fatal(err)
	}

	doc, err := store.Read("20.xml")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if doc.Id != "20" || doc.Title != "20.xml" || len(doc.Frames) != 1 {
		t.Errorf("unexpected doc %+v", doc)
	}

	if _, err := store.Read("21.xml"); err == nil {
		t.Error("expected error for unknown doc")
	}
}

func TestNewDocStoreMissingDir(t *testing.T) {
	if _, err := NewDocStore(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing directory")
	}
}
