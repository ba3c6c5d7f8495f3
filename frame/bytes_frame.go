package frame

type bytesFrame struct {
}

func (f *bytesFrame) Frame(data []byte) ([]byte, error) {
	return data, nil
}

func NewBytesFrame() Framer {
	return &bytesFrame{}
}
