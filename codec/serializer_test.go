package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type point struct {
	X float64 `json:"x" msgpack:"x"`
	N int     `json:"n" msgpack:"n"`
}

func TestJSONSerializer(t *testing.T) {
	s := NewJSONSerializer[point]()

	buf, err := s.Serialize(point{X: 1.5, N: 3})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"x":1.5,"n":3}`, string(buf))

	p, err := s.Deserialize(buf)
	assert.NoError(t, err)
	assert.Equal(t, point{X: 1.5, N: 3}, p)

	_, err = s.Deserialize([]byte(`{`))
	assert.Error(t, err)
}

func TestMsgPackSerializer(t *testing.T) {
	s := NewMsgPackSerializer[point]()

	buf, err := s.Serialize(point{X: 2.5, N: 7})
	assert.NoError(t, err)

	p, err := s.Deserialize(buf)
	assert.NoError(t, err)
	assert.Equal(t, point{X: 2.5, N: 7}, p)
}
