package deck

import (
	"fmt"
	"sort"
	"strings"
)

// Tag identifies an element kind or a capability shared by several kinds.
type Tag string

func (t Tag) String() string {
	return string(t)
}

// Tags of the standard element kinds.
const (
	Deck               Tag = "Deck"
	SlideElement       Tag = "SlideElement" // capability of TitleSlide and Slide
	TitleSlide         Tag = "TitleSlide"
	Slide              Tag = "Slide"
	Title              Tag = "Title"
	Subtitle           Tag = "Subtitle"
	Author             Tag = "Author"
	Institution        Tag = "Institution"
	Date               Tag = "Date"
	HeadLine           Tag = "HeadLine"
	Body               Tag = "Body"
	Paragraph          Tag = "Paragraph"
	Text               Tag = "Text"
	ItemList           Tag = "ItemList"
	ItemListItem       Tag = "ItemListItem"
	EnumList           Tag = "EnumList"
	EnumListItem       Tag = "EnumListItem"
	DescriptionList    Tag = "DescriptionList"
	DescriptionTerm    Tag = "DescriptionTerm"
	DescriptionContent Tag = "DescriptionContent"
	Table              Tag = "Table"
	Image              Tag = "Image"
	PreformattedBlock  Tag = "PreformattedBlock"
	BlockQuote         Tag = "BlockQuote"
	HorizontalRule     Tag = "HorizontalRule"
)

// --- Tag sets --------------------------------------------------------------

// TagSet is a set of tags. The zero value is an empty set ready to use
// for reading; use NewTagSet to create a set for writing.
type TagSet map[Tag]struct{}

// NewTagSet creates a set containing tags.
func NewTagSet(tags ...Tag) TagSet {
	ts := make(TagSet, len(tags))
	for _, t := range tags {
		ts[t] = struct{}{}
	}
	return ts
}

// Contains is true if t is a member of the set.
func (ts TagSet) Contains(t Tag) bool {
	_, ok := ts[t]
	return ok
}

// ContainsAll is true if every tag is a member of the set.
// An empty list of tags is contained in every set.
func (ts TagSet) ContainsAll(tags ...Tag) bool {
	for _, t := range tags {
		if !ts.Contains(t) {
			return false
		}
	}
	return true
}

// Union adds all tags of other to ts and returns ts.
func (ts TagSet) Union(other TagSet) TagSet {
	for t := range other {
		ts[t] = struct{}{}
	}
	return ts
}

// Sorted returns the members of the set in lexical order.
func (ts TagSet) Sorted() []Tag {
	tags := make([]Tag, 0, len(ts))
	for t := range ts {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

func (ts TagSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, t := range ts.Sorted() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(string(t))
	}
	b.WriteByte('}')
	return b.String()
}

// --- Kinds -----------------------------------------------------------------

// Kind is an element type. Every kind carries its own name as a tag,
// plus optional capability tags.
type Kind struct {
	name     Tag
	tags     TagSet
	singular bool
}

// Name returns the tag naming the kind.
func (k *Kind) Name() Tag {
	return k.name
}

// Tags returns the tags a kind carries. Clients must not modify the set.
func (k *Kind) Tags() TagSet {
	return k.tags
}

// Singular is true for kinds which occur at most once within their
// scope, e.g. the title slide of a deck or the title of a slide.
func (k *Kind) Singular() bool {
	return k.singular
}

func (k *Kind) String() string {
	return string(k.name)
}

// KindOption configures a kind during registration.
type KindOption func(*Kind)

// WithCapabilities adds capability tags to a kind.
func WithCapabilities(tags ...Tag) KindOption {
	return func(k *Kind) {
		for _, t := range tags {
			k.tags[t] = struct{}{}
		}
	}
}

// IsSingular flags a kind as singular.
func IsSingular() KindOption {
	return func(k *Kind) {
		k.singular = true
	}
}

// Registry is a closed set of element kinds. Registries are not safe for
// concurrent registration; register all kinds before themeing documents.
type Registry struct {
	kinds        map[Tag]*Kind
	capabilities TagSet
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		kinds:        make(map[Tag]*Kind),
		capabilities: NewTagSet(),
	}
}

// Register adds a new kind to the registry.
func (reg *Registry) Register(name Tag, opts ...KindOption) (*Kind, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty kind name", ErrUnknownTag)
	}
	if _, exists := reg.kinds[name]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateKind, name)
	}
	k := &Kind{name: name, tags: NewTagSet(name)}
	for _, opt := range opts {
		opt(k)
	}
	for t := range k.tags {
		if t != name {
			reg.capabilities[t] = struct{}{}
		}
	}
	reg.kinds[name] = k
	tracer().Debugf("registered element kind %s with tags %s", name, k.tags)
	return k, nil
}

// MustRegister is like Register, but panics on errors.
func (reg *Registry) MustRegister(name Tag, opts ...KindOption) *Kind {
	k, err := reg.Register(name, opts...)
	if err != nil {
		panic(err)
	}
	return k
}

// Lookup returns the kind for a name.
func (reg *Registry) Lookup(name Tag) (*Kind, bool) {
	if reg == nil {
		return nil, false
	}
	k, ok := reg.kinds[name]
	return k, ok
}

// Known is true for tags which either name a kind or are a capability
// of at least one kind.
func (reg *Registry) Known(t Tag) bool {
	if _, ok := reg.Lookup(t); ok {
		return true
	}
	return reg != nil && reg.capabilities.Contains(t)
}

// CheckTags returns an error wrapping ErrUnknownTag for the first tag
// not known to the registry.
func (reg *Registry) CheckTags(tags ...Tag) error {
	for _, t := range tags {
		if !reg.Known(t) {
			return fmt.Errorf("%w: %q", ErrUnknownTag, t)
		}
	}
	return nil
}

// Kinds returns all registered kind names, sorted.
func (reg *Registry) Kinds() []Tag {
	names := make([]Tag, 0, len(reg.kinds))
	for name := range reg.kinds {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// DefaultRegistry creates a registry containing the standard element kinds.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	reg.MustRegister(Deck)
	reg.MustRegister(TitleSlide, WithCapabilities(SlideElement), IsSingular())
	reg.MustRegister(Slide, WithCapabilities(SlideElement))
	reg.MustRegister(Title, IsSingular())
	for _, t := range []Tag{Subtitle, Author, Institution, Date} {
		reg.MustRegister(t, IsSingular())
	}
	for _, t := range []Tag{HeadLine, Body, Paragraph, Text, ItemList, ItemListItem,
		EnumList, EnumListItem, DescriptionList, DescriptionTerm, DescriptionContent,
		Table, Image, PreformattedBlock, BlockQuote, HorizontalRule} {
		reg.MustRegister(t)
	}
	return reg
}
