package objfile

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Options controls one strip run.
type Options struct {
	// Remove lists the material names whose faces are dropped.
	Remove []string
	// CaseSensitive switches the material name comparison. Off by default,
	// names are folded to lower case on both sides.
	CaseSensitive bool
	// Compact drops attribute declarations no surviving face references
	// and renumbers the survivors densely. Silently disabled for the whole
	// document when any face uses relative (negative) indexing.
	Compact bool
}

// Result reports what one strip run did.
type Result struct {
	RemovedFaces int
	KeptFaces    int
	Compacted    bool
	VerticesKept int
	UVsKept      int
	NormalsKept  int
}

// Strip removes all faces assigned to the removal materials and, when
// compaction is both requested and safe, drops unreferenced attribute
// declarations and rewrites the surviving face indexes. The document is
// mutated in place. State is scoped to this call, nothing persists.
func (d *Document) Strip(opts Options) (*Result, error) {
	res := &Result{}
	removeSet := newMaterialSet(opts.Remove, opts.CaseSensitive)

	// Relative indexes are defined against the cumulative attribute count
	// at the point of the face, any renumbering would invalidate them.
	// One negative index anywhere disables compaction for the whole file.
	doCompact := opts.Compact && !d.HasRelativeIndexes()

	// Stream the records through the material filter. The active material
	// is whatever the most recent usemtl named, faces before the first
	// usemtl never match. Decisions are final, later directives cannot
	// resurrect a dropped face.
	currentMaterial := ""
	haveMaterial := false
	kept := make([]*Record, 0, len(d.Records))
	for _, rec := range d.Records {
		switch rec.Type {
		case MtlUse:
			currentMaterial = rec.Material
			haveMaterial = true
			kept = append(kept, rec)
		case Face:
			if haveMaterial && removeSet.matches(currentMaterial) {
				res.RemovedFaces++
				continue
			}
			res.KeptFaces++
			kept = append(kept, rec)
		default:
			kept = append(kept, rec)
		}
	}
	d.Records = kept

	if !doCompact {
		return res, nil
	}
	if err := d.compact(res); err != nil {
		return nil, err
	}
	return res, nil
}

// HasRelativeIndexes reports whether any face references an attribute
// through a negative index, in any of the three index spaces.
func (d *Document) HasRelativeIndexes() bool {
	for _, rec := range d.Records {
		if rec.Type != Face {
			continue
		}
		for _, fv := range rec.Verts {
			if fv.V < 0 || fv.VT < 0 || fv.VN < 0 {
				return true
			}
		}
	}
	return false
}

// compact runs the collector and compactor over the already filtered
// records. The three index spaces go through identical code, only the
// Type tag differs.
func (d *Document) compact(res *Result) error {
	// collect: every positive index a kept face references, per space.
	// Set semantics, duplicates are free.
	used := make(map[Type]map[int]struct{}, len(AttributeTypes))
	for _, t := range AttributeTypes {
		used[t] = make(map[int]struct{})
	}
	for _, rec := range d.Records {
		if rec.Type != Face {
			continue
		}
		for _, fv := range rec.Verts {
			for _, t := range AttributeTypes {
				if idx := fv.Index(t); idx > 0 {
					used[t][idx] = struct{}{}
				}
			}
		}
	}

	declared := make(map[Type]int, len(AttributeTypes))
	remap := make(map[Type]map[int]int, len(AttributeTypes))
	for _, t := range AttributeTypes {
		declared[t] = d.Count(t)
		remap[t] = renumber(used[t], declared[t])
	}

	// rewrite faces under the renumbering. A positive index without a
	// renumber entry means the collector and this pass disagree, abort
	// instead of writing a document with dangling references.
	for _, rec := range d.Records {
		if rec.Type != Face {
			continue
		}
		for i := range rec.Verts {
			for _, t := range AttributeTypes {
				idx := rec.Verts[i].Index(t)
				if idx <= 0 {
					continue
				}
				renumbered, ok := remap[t][idx]
				if !ok {
					return &InternalConsistencyError{Space: t, Index: idx, Declared: declared[t]}
				}
				rec.Verts[i].setIndex(t, renumbered)
			}
		}
	}

	// collapse each attribute space into one contiguous block of the
	// surviving declarations, in original relative order, placed where the
	// first declaration of that kind stood.
	keptAttrs := make(map[Type][]*Record, len(AttributeTypes))
	ordinal := make(map[Type]int, len(AttributeTypes))
	for _, rec := range d.Records {
		t := rec.Type
		if _, isAttr := remap[t]; !isAttr {
			continue
		}
		ordinal[t]++
		if _, ok := remap[t][ordinal[t]]; ok {
			keptAttrs[t] = append(keptAttrs[t], rec)
		}
	}

	out := make([]*Record, 0, len(d.Records))
	emitted := make(map[Type]bool, len(AttributeTypes))
	for _, rec := range d.Records {
		if _, isAttr := remap[rec.Type]; isAttr {
			if !emitted[rec.Type] {
				out = append(out, keptAttrs[rec.Type]...)
				emitted[rec.Type] = true
			}
			continue
		}
		out = append(out, rec)
	}
	d.Records = out

	res.Compacted = true
	res.VerticesKept = len(keptAttrs[Vertex])
	res.UVsKept = len(keptAttrs[UV])
	res.NormalsKept = len(keptAttrs[Normal])
	return nil
}

// renumber assigns dense 1-based positions to the used indexes that fall
// inside the declared range, ascending, so the relative order of the
// surviving attributes never changes.
func renumber(used map[int]struct{}, declared int) map[int]int {
	sorted := make([]int, 0, len(used))
	for idx := range used {
		if idx >= 1 && idx <= declared {
			sorted = append(sorted, idx)
		}
	}
	slices.Sort(sorted)
	remap := make(map[int]int, len(sorted))
	for i, old := range sorted {
		remap[old] = i + 1
	}
	return remap
}

// setIndex is the write side of FaceVert.Index.
func (fv *FaceVert) setIndex(t Type, value int) {
	switch t {
	case Vertex:
		fv.V = value
	case UV:
		fv.VT = value
	case Normal:
		fv.VN = value
	}
}

// materialSet

type materialSet struct {
	names         map[string]struct{}
	caseSensitive bool
}

func newMaterialSet(names []string, caseSensitive bool) materialSet {
	set := materialSet{
		names:         make(map[string]struct{}, len(names)),
		caseSensitive: caseSensitive,
	}
	for _, name := range names {
		if !caseSensitive {
			name = strings.ToLower(name)
		}
		set.names[name] = struct{}{}
	}
	return set
}

func (ms materialSet) matches(name string) bool {
	if !ms.caseSensitive {
		name = strings.ToLower(name)
	}
	_, ok := ms.names[name]
	return ok
}

// StripFile runs the full pipeline on one file: parse, strip, write.
// The output file is only touched after every pass has succeeded, a
// failing run leaves nothing behind.
func StripFile(input, output string, opts Options) (*Result, error) {
	doc, _, err := ParseFile(input)
	if err != nil {
		return nil, err
	}
	res, err := doc.Strip(opts)
	if err != nil {
		return nil, err
	}
	w := &Writer{Doc: doc}
	if _, err := w.WriteFile(output); err != nil {
		return nil, err
	}
	return res, nil
}
