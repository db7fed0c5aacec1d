package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"
)

// Property is a raw value for a style property. For example, with
//
//     font-size: x-large
//
// a property value of "x-large" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- Property Groups --------------------------------------------------

// PropertyGroup is a collection of properties sharing a common topic.
//
// The mapping of property into groups is documented with
// GroupNameFromPropertyKey[...].
type PropertyGroup struct {
	name      string
	propsDict map[string]Property
}

// NewPropertyGroup creates a new empty property group, given its name.
func NewPropertyGroup(groupname string) *PropertyGroup {
	pg := &PropertyGroup{}
	pg.name = groupname
	return pg
}

// Name returns the name of the property group. Once named (during
// construction), property groups may not be renamed.
func (pg *PropertyGroup) Name() string {
	return pg.name
}

// Stringer for property groups; used for debugging.
func (pg *PropertyGroup) String() string {
	s := "[" + pg.name + "] =\n"
	for _, kv := range pg.Properties() {
		s += fmt.Sprintf("  %s = %s\n", kv.Key, kv.Value)
	}
	return s
}

// Properties returns all properties of a group, sorted by key.
func (pg *PropertyGroup) Properties() []KeyValue {
	r := make([]KeyValue, 0, len(pg.propsDict))
	for k, v := range pg.propsDict {
		r = append(r, KeyValue{k, v})
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Key < r[j].Key })
	return r
}

// IsSet is a predicated wether a property is set within this group.
func (pg *PropertyGroup) IsSet(key string) bool {
	if pg == nil || pg.propsDict == nil {
		return false
	}
	v, ok := pg.propsDict[key]
	return ok && !v.IsEmpty()
}

// Get a property's value.
func (pg *PropertyGroup) Get(key string) (Property, bool) {
	if pg == nil || pg.propsDict == nil {
		return NullStyle, false
	}
	p, ok := pg.propsDict[key]
	return p, ok
}

// Set a property's value. Overwrites an existing value, if present.
// Returns true if the stored value changed.
//
// Style property values are always converted to lower case.
func (pg *PropertyGroup) Set(key string, p Property) bool {
	p = Property(strings.ToLower(strings.TrimSpace(string(p))))
	if pg.propsDict == nil {
		pg.propsDict = make(map[string]Property)
	}
	if old, ok := pg.propsDict[key]; ok && old == p {
		return false
	}
	pg.propsDict[key] = p
	return true
}

// Add a property's value. Does not overwrite an existing value, i.e., does nothing
// if a value is already set.
func (pg *PropertyGroup) Add(key string, p Property) {
	if pg.propsDict == nil {
		pg.propsDict = make(map[string]Property)
	}
	if _, exists := pg.propsDict[key]; !exists {
		pg.propsDict[key] = Property(strings.ToLower(strings.TrimSpace(string(p))))
	}
}

// Len returns the number of properties in the group.
func (pg *PropertyGroup) Len() int {
	if pg == nil {
		return 0
	}
	return len(pg.propsDict)
}

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//    GroupNameFromPropertyKey("font-size") => "Font"
//
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	groupname, found := groupNameFromPropertyKey[key]
	if !found {
		groupname = PGX
	}
	return groupname
}

// Symbolic names for string literals, denoting PropertyGroups.
const (
	PGAlignment = "Alignment"
	PGFont      = "Font"
	PGMargins   = "Margins"
	PGPadding   = "Padding"
	PGColor     = "Color"
	PGDisplay   = "Display"
	PGText      = "Text"
	PGX         = "X"
)

var groupNameFromPropertyKey = map[string]string{
	"align":            PGAlignment, // Alignment
	"vertical-align":   PGAlignment,
	"font-size":        PGFont, // Font
	"font-family":      PGFont,
	"font-weight":      PGFont,
	"font-style":       PGFont,
	"margin-top":       PGMargins, // Margins
	"margin-left":      PGMargins,
	"margin-right":     PGMargins,
	"margin-bottom":    PGMargins,
	"padding-top":      PGPadding, // Padding
	"padding-left":     PGPadding,
	"padding-right":    PGPadding,
	"padding-bottom":   PGPadding,
	"color":            PGColor,
	"background-color": PGColor,
	"display":          PGDisplay,
	"visibility":       PGDisplay,
	"line-height":      PGText,
	"letter-spacing":   PGText,
	"white-space":      PGText,
	"underline":        PGText,
}

// IsCascading returns wether the standard behaviour for a propery is to be
// inherited or not, i.e., a call to retrieve its value will cascade
// to enclosing elements.
func IsCascading(key string) bool {
	if strings.HasPrefix(key, "font-") {
		return true
	}
	switch key {
	case "color", "line-height", "letter-spacing", "white-space", "visibility":
		return true
	}
	return false
}

// SplitCompoundProperty splits up a shortcut property into its individual
// components. Returns a slice of key-value pairs representing the
// individual (fine grained) style properties.
// Example:
//    SplitCompountProperty("padding", "3pt")
// will return
//    "padding-top"    => "3pt"
//    "padding-right"  => "3pt"
//    "padding-bottom" => "3pt"
//    "padding-left"   => "3pt"
func SplitCompoundProperty(key string, value Property) ([]KeyValue, error) {
	fields := strings.Fields(value.String())
	switch key {
	case "margin", "margins":
		return feazeCompound4("margin", fields)
	case "padding":
		return feazeCompound4("padding", fields)
	}
	return nil, fmt.Errorf("not recognized as compound property: %s", key)
}

// IsCompoundProperty is true for shortcut properties understood by
// SplitCompoundProperty.
func IsCompoundProperty(key string) bool {
	switch key {
	case "margin", "margins", "padding":
		return true
	}
	return false
}

// Distribution of values follows CSS: top, right, bottom, left, with
// missing values taken from the opposite side.
func feazeCompound4(pre string, fields []string) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("expecting 1-4 values for %s", pre)
	}
	var v [4]string
	switch l {
	case 1:
		v = [4]string{fields[0], fields[0], fields[0], fields[0]}
	case 2:
		v = [4]string{fields[0], fields[1], fields[0], fields[1]}
	case 3:
		v = [4]string{fields[0], fields[1], fields[2], fields[1]}
	case 4:
		v = [4]string{fields[0], fields[1], fields[2], fields[3]}
	}
	r := make([]KeyValue, 4)
	for i, dir := range fourDirs {
		r[i] = KeyValue{pre + "-" + dir, Property(v[i])}
	}
	return r, nil
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}

// --- Property Map -----------------------------------------------------

// PropertyMap holds style properties. nil is a legal (empty) property map.
// A property map is the entity styling a slide element: an element links
// to a property map, which contains zero or more property groups.
type PropertyMap struct {
	m map[string]*PropertyGroup // into struct to make it opaque for clients
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{}
}

func (pmap *PropertyMap) String() string {
	s := "Property Map = {\n"
	for _, name := range pmap.GroupNames() {
		s += pmap.m[name].String()
	}
	s += "}"
	return s
}

// Size returns the number of property groups.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.m)
}

// Len returns the number of properties over all groups.
func (pmap *PropertyMap) Len() int {
	if pmap == nil {
		return 0
	}
	n := 0
	for _, g := range pmap.m {
		n += g.Len()
	}
	return n
}

// GroupNames returns the names of all groups, sorted.
func (pmap *PropertyMap) GroupNames() []string {
	if pmap == nil {
		return nil
	}
	names := make([]string, 0, len(pmap.m))
	for name := range pmap.m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Group returns the property group for a group name or nil.
func (pmap *PropertyMap) Group(groupname string) *PropertyGroup {
	if pmap == nil {
		return nil
	}
	return pmap.m[groupname]
}

// Property returns a style property value, together with an indicator
// wether it has been found in the properties map.
// No cascading is performed.
func (pmap *PropertyMap) Property(key string) (Property, bool) {
	group := pmap.Group(GroupNameFromPropertyKey(key))
	if group == nil {
		return NullStyle, false
	}
	return group.Get(key)
}

// Properties returns all properties of the map, ordered by group name
// and key.
func (pmap *PropertyMap) Properties() []KeyValue {
	var r []KeyValue
	for _, name := range pmap.GroupNames() {
		r = append(r, pmap.m[name].Properties()...)
	}
	return r
}

// AsMap returns the properties as a plain map from keys to values.
func (pmap *PropertyMap) AsMap() map[string]string {
	r := make(map[string]string, pmap.Len())
	for _, kv := range pmap.Properties() {
		r[kv.Key] = kv.Value.String()
	}
	return r
}

// AddAllFromGroup transfers all style properties from a property group
// to a property map. If overwrite is set, existing style property values
// will be overwritten, otherwise only new values are set.
func (pmap *PropertyMap) AddAllFromGroup(group *PropertyGroup, overwrite bool) *PropertyMap {
	if pmap == nil {
		pmap = NewPropertyMap()
	}
	g := pmap.group(group.name)
	for k, v := range group.propsDict {
		if overwrite {
			g.Set(k, v)
		} else {
			g.Add(k, v)
		}
	}
	return pmap
}

// Set sets a property of this property map, e.g.,
//
//    pm.Set("font-size", "large")
//
// Overwrites an existing value. Returns true if the stored value changed,
// i.e. setting a key to its current value is a no-op.
func (pmap *PropertyMap) Set(key string, value Property) bool {
	if pmap == nil {
		return false
	}
	return pmap.group(GroupNameFromPropertyKey(key)).Set(key, value)
}

// Add adds a property to this property map, if it is not yet set.
func (pmap *PropertyMap) Add(key string, value Property) {
	if pmap == nil {
		return
	}
	pmap.group(GroupNameFromPropertyKey(key)).Add(key, value)
}

func (pmap *PropertyMap) group(groupname string) *PropertyGroup {
	if pmap.m == nil {
		pmap.m = make(map[string]*PropertyGroup)
	}
	group, found := pmap.m[groupname]
	if !found {
		tracer().Debugf("styling: creating property group %s", groupname)
		group = NewPropertyGroup(groupname)
		pmap.m[groupname] = group
	}
	return group
}
