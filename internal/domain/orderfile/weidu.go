package orderfile

import (
	"fmt"

	"github.com/modhearth/modorder/internal/domain/component"
)

// WeiDULog is the collaborator contract for a parsed WeiDU log: the raw
// component id tokens in installation order.
type WeiDULog interface {
	ComponentIDs() []string
}

// ImportWeiDULog converts a parsed WeiDU log into an order holding a
// single synthetic sequence at index 0. Tokens follow the component
// grammar; a malformed token is an ErrInvalidFormat violation.
func ImportWeiDULog(log WeiDULog) (Order, error) {
	refs, err := component.ParseList(log.ComponentIDs())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}

	return Order{0: FromReferences(refs)}, nil
}
