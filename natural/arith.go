package natural

import (
	"github.com/calebcase/bignum/limb"
)

// Add returns n + m. It never fails and does not modify its operands.
func (n Natural) Add(m Natural) Natural {
	return Natural{words: limb.Add(n.words, m.words)}
}

// Mul returns n * m. It never fails and does not modify its operands.
func (n Natural) Mul(m Natural) Natural {
	return Natural{words: limb.Mul(n.words, m.words)}
}
