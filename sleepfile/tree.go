package sleepfile

import (
	"fmt"

	"github.com/khernyo/sleep-parser/errs"
	"github.com/khernyo/sleep-parser/format"
	"github.com/khernyo/sleep-parser/section"
	"github.com/khernyo/sleep-parser/tree"
)

// ReadTree decodes the whole body of a tree file into an in-memory
// tree.Tree ready for validation or further appends.
func (f *File) ReadTree(opts ...tree.Option) (*tree.Tree, error) {
	if f.header.FileType != format.TypeTree {
		return nil, fmt.Errorf("%w: cannot read a tree from a %s file",
			errs.ErrUnknownFileType, f.header.FileType)
	}

	body, err := f.Body()
	if err != nil {
		return nil, err
	}

	seq, err := section.Entries(body, f.header.EntrySize)
	if err != nil {
		return nil, err
	}

	entries := make([]section.Entry, 0, len(body)/section.EntrySize)
	for _, e := range seq {
		entries = append(entries, e)
	}

	return tree.Load(entries, opts...)
}

// WriteTree writes every entry of an in-memory tree into the file body.
// Gap positions (incomplete internal nodes) are stored as zero entries,
// exactly as Load expects to read them back.
func (f *File) WriteTree(t *tree.Tree) error {
	if err := f.requireHashEntries(); err != nil {
		return err
	}

	entries := t.Entries()
	if len(entries) == 0 {
		return nil
	}

	body := make([]byte, len(entries)*section.EntrySize)
	offset := 0
	for i := range entries {
		offset = entries[i].WriteToSlice(body, offset)
	}

	_, err := f.provider.WriteAt(body, section.BodyOffset)

	return err
}
