package contact

import "github.com/gofiber/fiber/v2"

// Origin tells how a contact form was submitted.
type Origin int

const (
	// OriginStandard is a plain browser form post, answered with a redirect or a page.
	OriginStandard Origin = iota
	// OriginScript is a post from the page script, answered with JSON.
	OriginScript
)

// ScriptMarker is the X-Requested-With value sent by the page script.
const ScriptMarker = "XMLHttpRequest"

// ResolveOrigin inspects the X-Requested-With header of the request.
func ResolveOrigin(c *fiber.Ctx) Origin {
	if c.Get(fiber.HeaderXRequestedWith) == ScriptMarker {
		return OriginScript
	}

	return OriginStandard
}

func (o Origin) String() string {
	if o == OriginScript {
		return "script"
	}

	return "standard"
}
