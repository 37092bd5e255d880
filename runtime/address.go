package runtime

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"strings"
)

const (
	addressPrefix = "@"
	exceptPrefix  = "!"
	nameSeparator = ","
)

// ParseAddressing classifies a raw chat line.
//
//	hello            -> All, body "hello"
//	@alice,bob hi    -> Subset{alice, bob}, body "hi"
//	@!carol hi       -> AllExcept{carol}, body "hi"
//
// An addressed line without a space has no body and yields ErrMalformedAddressing.
// Names are kept verbatim; unknown names simply match nobody at delivery time.
func ParseAddressing(line string) (domain.RecipientSpec, string, error) {
	if !strings.HasPrefix(line, addressPrefix) {
		return domain.ToAll(), line, nil
	}

	token, body, found := strings.Cut(line, " ")
	if !found {
		return domain.RecipientSpec{}, "", errors.ErrMalformedAddressing
	}
	token = strings.TrimPrefix(token, addressPrefix)

	if rest, except := strings.CutPrefix(token, exceptPrefix); except {
		return domain.ToAllExcept(strings.Split(rest, nameSeparator)...), body, nil
	}
	return domain.ToSubset(strings.Split(token, nameSeparator)...), body, nil
}
