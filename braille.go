package brailleart

const (
	// BlockWidth is the number of pixel columns covered by one braille cell.
	BlockWidth = 2
	// BlockHeight is the number of pixel rows covered by one braille cell.
	BlockHeight = 4

	blockSize = BlockWidth * BlockHeight

	// Blank is the empty braille pattern. Every other pattern is an offset from it.
	Blank rune = '⠀'
)

// DotBlock represents an 8 dot braille pattern in row-major order, i.e. the
// index of a dot is row*2 + col:
//   +------+
//   |(0)(1)|
//   |(2)(3)|
//   |(4)(5)|
//   |(6)(7)|
//   +------+
type DotBlock [blockSize]bool

// lowEndian lists, for each bit of the code point offset starting at the
// least significant, the row-major DotBlock index that sets it. Unicode
// numbers the dots down the left column first:
//   +------+
//   |(1)(4)|
//   |(2)(5)|
//   |(3)(6)|
//   |(7)(8)|
//   +------+
// See https://en.wikipedia.org/wiki/Braille_Patterns#Identifying.2C_naming_and_ordering
var lowEndian = [blockSize]int{0, 2, 4, 1, 3, 5, 6, 7}

// Rune maps each dot to its braille number and calculates the corresponding
// unicode symbol in the range U+2800..U+28FF.
func (b DotBlock) Rune() rune {
	var v rune
	for bit, i := range lowEndian {
		if b[i] {
			v |= 1 << uint(bit)
		}
	}
	return Blank + v
}

// String returns a unicode braille character. One of:
//  ⠀⠁⠂⠃⠄⠅⠆⠇⠈⠉⠊⠋⠌⠍⠎⠏ ... ⣰⣱⣲⣳⣴⣵⣶⣷⣸⣹⣺⣻⣼⣽⣾⣿
func (b DotBlock) String() string {
	return string(b.Rune())
}

// Count returns the number of raised dots.
func (b DotBlock) Count() int {
	var n int
	for _, set := range b {
		if set {
			n++
		}
	}
	return n
}

// Encode is shorthand for b.Rune().
func Encode(b DotBlock) rune {
	return b.Rune()
}

// DotBlockOf is the inverse of Encode. It reports false if r is not a braille
// pattern.
func DotBlockOf(r rune) (DotBlock, bool) {
	var b DotBlock
	if r < Blank || r > Blank+0xff {
		return b, false
	}
	v := r - Blank
	for bit, i := range lowEndian {
		b[i] = v&(1<<uint(bit)) != 0
	}
	return b, true
}
