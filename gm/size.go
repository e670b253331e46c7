package gm

// MaxSize is the largest number of rows or columns of a Vec or Mat.
const MaxSize = 4

// Size is a type level size of a Vec or a Mat.
type Size interface {
	D1 | D2 | D3 | D4
	Len() int
}

type D1 struct{}
type D2 struct{}
type D3 struct{}
type D4 struct{}

func (D1) Len() int { return 1 }
func (D2) Len() int { return 2 }
func (D3) Len() int { return 3 }
func (D4) Len() int { return 4 }

func sizeOf[N Size]() int {
	var n N
	return n.Len()
}
