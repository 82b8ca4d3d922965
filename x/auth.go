package x

import (
	"github.com/iov-one/adminnft"
)

// Authenticator is an interface we can use to extract authentication info
// from the context. This should be passed into the constructor of handlers,
// so we can plug in another authentication system rather than hard-coding
// x/sigs for all extensions.
type Authenticator interface {
	// GetConditions reveals all Conditions fulfilled, you may want the
	// GetAddresses helper.
	GetConditions(adminnft.Context) []adminnft.Condition
	// HasAddress checks if any condition matches this address.
	HasAddress(adminnft.Context, adminnft.Address) bool
}

// MultiAuth chains together many Authenticators into one.
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups together a series of Authenticator.
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls}
}

// GetConditions combines all Conditions from all Authenticators.
func (m MultiAuth) GetConditions(ctx adminnft.Context) []adminnft.Condition {
	var res []adminnft.Condition
	for _, impl := range m.impls {
		res = append(res, impl.GetConditions(ctx)...)
	}
	return res
}

// HasAddress returns true iff any Authenticator supports this address.
func (m MultiAuth) HasAddress(ctx adminnft.Context, addr adminnft.Address) bool {
	for _, impl := range m.impls {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// GetAddresses wraps the GetConditions method of any Authenticator.
func GetAddresses(ctx adminnft.Context, auth Authenticator) []adminnft.Address {
	conds := auth.GetConditions(ctx)
	addrs := make([]adminnft.Address, len(conds))
	for i, c := range conds {
		addrs[i] = c.Address()
	}
	return addrs
}

// MainSigner returns the first condition if any, otherwise nil.
func MainSigner(ctx adminnft.Context, auth Authenticator) adminnft.Condition {
	signers := auth.GetConditions(ctx)
	if len(signers) == 0 {
		return nil
	}
	return signers[0]
}

// HasAllAddresses returns true if all elements in required are also in
// context.
func HasAllAddresses(ctx adminnft.Context, auth Authenticator, required []adminnft.Address) bool {
	for _, r := range required {
		if !auth.HasAddress(ctx, r) {
			return false
		}
	}
	return true
}

// HasNAddresses returns true if at least n elements in required are also in
// context.
func HasNAddresses(ctx adminnft.Context, auth Authenticator, required []adminnft.Address, n int) bool {
	if n <= 0 {
		return true
	}
	for _, r := range required {
		if auth.HasAddress(ctx, r) {
			n--
			if n == 0 {
				return true
			}
		}
	}
	return false
}

// HasAllConditions returns true if all elements in required are also in
// context.
func HasAllConditions(ctx adminnft.Context, auth Authenticator, required []adminnft.Condition) bool {
	for _, r := range required {
		if !auth.HasAddress(ctx, r.Address()) {
			return false
		}
	}
	return true
}
