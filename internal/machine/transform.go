package machine

import "golang.org/x/text/transform"

var _ transform.Transformer = (*Machine)(nil)

// Transform implements transform.Transformer. It enciphers byte for byte;
// ASCII letters never occur inside multi-byte UTF-8 sequences, so any
// text passes through intact apart from its letters.
//
// transform.NewReader and transform.String call Reset first, so a stream
// always starts from the configured positions.
func (m *Machine) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
		err = transform.ErrShortDst
	}
	for i := 0; i < n; i++ {
		dst[i] = m.encryptByte(src[i])
	}
	return n, n, err
}
