package host

// StaticEnum is an Enum with a fixed item list.
type StaticEnum struct {
	name  string
	items []*StaticItem
}

// NewEnum creates an enumeration whose items take values 0..n-1 in order.
func NewEnum(name string, itemNames ...string) *StaticEnum {
	e := &StaticEnum{name: name}
	for i, n := range itemNames {
		e.items = append(e.items, &StaticItem{enum: e, name: n, value: i})
	}
	return e
}

func (e *StaticEnum) EnumName() string { return e.name }

// Items returns the enumeration's items in declaration order.
func (e *StaticEnum) Items() []*StaticItem {
	return append([]*StaticItem(nil), e.items...)
}

// Item returns the named item, or nil.
func (e *StaticEnum) Item(name string) *StaticItem {
	for _, it := range e.items {
		if it.name == name {
			return it
		}
	}
	return nil
}

func (e *StaticEnum) String() string { return e.name }

// StaticItem is a member of a StaticEnum.
type StaticItem struct {
	enum  *StaticEnum
	name  string
	value int
}

func (i *StaticItem) EnumType() Enum   { return i.enum }
func (i *StaticItem) ItemName() string { return i.name }
func (i *StaticItem) ItemValue() int   { return i.value }
func (i *StaticItem) String() string   { return i.enum.name + "." + i.name }
