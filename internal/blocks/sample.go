package blocks

import "strings"

// sampleDocument is written by `blocks init` and opened when no document is
// configured.
const sampleDocument = `rtl = false

[[blocks]]
name = "core/heading"
content = "# Welcome to cli-blocks"

[[blocks]]
name = "core/group"

  [[blocks.inner]]
  name = "core/paragraph"
  content = "Blocks nest. Select one to see its **breadcrumb** in the floating toolbar."

  [[blocks.inner]]
  name = "core/columns"

    [[blocks.inner.inner]]
    name = "core/column"

      [[blocks.inner.inner.inner]]
      name = "core/paragraph"
      content = "Press *u* to navigate up to the parent block."

    [[blocks.inner.inner]]
    name = "core/column"

      [[blocks.inner.inner.inner]]
      name = "core/quote"
      content = "> Hiding is quicker than showing."

[[blocks]]
name = "core/group"
content = "An empty group: the toolbar hides while it is selected."

[[blocks]]
name = "core/paragraph"
content = "Press *e* to edit a block and *w* to write the document."
`

// Sample returns a store holding the sample document.
func Sample() *Store {
	s, err := Decode(strings.NewReader(sampleDocument))
	if err != nil {
		panic("blocks: invalid sample document: " + err.Error())
	}
	return s
}

// SampleDocument returns the TOML source of the sample document.
func SampleDocument() string {
	return sampleDocument
}
