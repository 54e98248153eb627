// Package authz is the stateless gate consulted before every mutating
// store operation. It decides allow/deny from the acting identity, the
// resource owner and the operation; it never touches state itself.
package authz

// Operation enumerates the mutating operations subject to authorization.
type Operation int

const (
	OpUpdateProfile Operation = iota
	OpUpdatePost
	OpDeletePost
	OpCreatePost
	OpCreateComment
	OpLike
	OpUnlike
	OpFollow
	OpUnfollow
)

// Decision is the gate's verdict. Reason is set only on deny.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision             { return Decision{Allowed: true} }
func deny(reason string) Decision { return Decision{Allowed: false, Reason: reason} }

// Authorize decides whether actorID may perform op against a resource owned
// by ownerID. actorID zero means unauthenticated. Ownership operations
// (profile update, post update/delete) require actor == owner; everything
// else only requires an authenticated actor, with entity-level invariants
// (self-follow, duplicate like) enforced by the stores.
func Authorize(actorID, ownerID uint, op Operation) Decision {
	if actorID == 0 {
		return deny("authentication required")
	}
	switch op {
	case OpUpdateProfile:
		if actorID != ownerID {
			return deny("you can only update your own profile")
		}
	case OpUpdatePost:
		if actorID != ownerID {
			return deny("you can only update your own posts")
		}
	case OpDeletePost:
		if actorID != ownerID {
			return deny("you can only delete your own posts")
		}
	case OpCreatePost, OpCreateComment, OpLike, OpUnlike, OpFollow, OpUnfollow:
		// any authenticated identity
	}
	return allow()
}
