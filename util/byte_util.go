package util

// AppendByte 返回size个零字节
func AppendByte(size int) []byte {

	var buff = make([]byte, 0)

	for i := 0; i < size; i++ {
		buff = append(buff, 0)
	}

	return buff
}
