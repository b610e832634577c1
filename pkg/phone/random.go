package phone

import (
	"crypto/rand"
	"fmt"
	"math/big"

	apperrors "github.com/mroshb/phone_manager/pkg/errors"
	"github.com/mroshb/phone_manager/pkg/operators"
)

// maxRandomAttempts bounds the redraws Random makes when a drawn number lands
// in a range another operator owns through a longer or earlier prefix.
const maxRandomAttempts = 100

// Random returns a local-format number ("0" + national number) for op. An
// empty op picks an operator uniformly at random from the prefix table and
// keeps it until a draw lands; an operator whose ranges are fully owned by
// others is dropped and the pick repeated. The result always resolves back to
// the chosen operator.
func (m *Manager) Random(op operators.Code) (string, error) {
	if op != "" {
		if _, ok := m.Prefixes(op); !ok {
			return "", apperrors.New(apperrors.ErrCodeUnknownOperator, fmt.Sprintf("unknown operator %q", op))
		}
		number, ok, err := m.randomFor(op)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", apperrors.New(apperrors.ErrCodeInternalError, fmt.Sprintf("no number for operator %q after %d attempts", op, maxRandomAttempts))
		}
		return number, nil
	}

	candidates := m.Operators()
	for len(candidates) > 0 {
		i, err := m.randInt(int64(len(candidates)))
		if err != nil {
			return "", err
		}
		number, ok, err := m.randomFor(candidates[i])
		if err != nil {
			return "", err
		}
		if ok {
			return number, nil
		}
		candidates = append(candidates[:i], candidates[i+1:]...)
	}
	return "", apperrors.New(apperrors.ErrCodeInternalError, "no operator in the prefix table yields a number")
}

// randomFor draws numbers for target until one resolves back to it. ok is
// false once maxRandomAttempts draws all landed in other operators' ranges.
func (m *Manager) randomFor(target operators.Code) (number string, ok bool, err error) {
	for attempt := 0; attempt < maxRandomAttempts; attempt++ {
		number, err = m.draw(target)
		if err != nil {
			return "", false, err
		}
		if got, found := m.Operator(number); found && got == target {
			return number, true, nil
		}
	}
	return "", false, nil
}

// draw picks one of target's prefixes and pads it with random digits.
func (m *Manager) draw(target operators.Code) (string, error) {
	prefixes, _ := m.Prefixes(target)
	i, err := m.randInt(int64(len(prefixes)))
	if err != nil {
		return "", err
	}

	bare := prefixes[i][len(Trunk):]
	remaining := m.country.Length - len(bare)
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(remaining)), nil)
	n, err := rand.Int(m.rand, limit)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternalError, "random source failed")
	}
	return fmt.Sprintf("%s%s%0*d", Trunk, bare, remaining, n.Int64()), nil
}

func (m *Manager) randInt(n int64) (int64, error) {
	v, err := rand.Int(m.rand, big.NewInt(n))
	if err != nil {
		return 0, apperrors.Wrap(err, apperrors.ErrCodeInternalError, "random source failed")
	}
	return v.Int64(), nil
}
