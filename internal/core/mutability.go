package core

func (NilT) IsMutable() bool {
	return false
}

func (Bool) IsMutable() bool {
	return false
}

func (Int) IsMutable() bool {
	return false
}

func (Float) IsMutable() bool {
	return false
}

func (Byte) IsMutable() bool {
	return false
}

func (Rune) IsMutable() bool {
	return false
}

func (String) IsMutable() bool {
	return false
}

func (*Tuple) IsMutable() bool {
	return false
}

func (*List) IsMutable() bool {
	return true
}

func (slice *ByteSlice) IsMutable() bool {
	return slice.isDataMutable
}
