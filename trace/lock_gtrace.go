package trace

import (
	"time"
)

// Compose returns a new Lock which has functional fields composed both from t and x.
// A field set on one side only is taken as is, a field set on neither stays nil.
func (t *Lock) Compose(x *Lock) *Lock {
	var ret Lock
	switch h1, h2 := t.onLock(), x.onLock(); {
	case h1 == nil:
		ret.OnLock = h2
	case h2 == nil:
		ret.OnLock = h1
	default:
		ret.OnLock = func(info LockStartInfo) func(LockAcquiredInfo) func(LockReleasedInfo) {
			r1, r2 := h1(info), h2(info)

			return func(info LockAcquiredInfo) func(LockReleasedInfo) {
				var r11, r21 func(LockReleasedInfo)
				if r1 != nil {
					r11 = r1(info)
				}
				if r2 != nil {
					r21 = r2(info)
				}

				return func(info LockReleasedInfo) {
					if r11 != nil {
						r11(info)
					}
					if r21 != nil {
						r21(info)
					}
				}
			}
		}
	}
	switch h1, h2 := t.onCallback(), x.onCallback(); {
	case h1 == nil:
		ret.OnCallback = h2
	case h2 == nil:
		ret.OnCallback = h1
	default:
		ret.OnCallback = func(info LockCallbackStartInfo) func(LockCallbackDoneInfo) {
			r1, r2 := h1(info), h2(info)

			return func(info LockCallbackDoneInfo) {
				if r1 != nil {
					r1(info)
				}
				if r2 != nil {
					r2(info)
				}
			}
		}
	}

	return &ret
}

func (t *Lock) onLock() func(LockStartInfo) func(LockAcquiredInfo) func(LockReleasedInfo) {
	if t == nil {
		return nil
	}

	return t.OnLock
}

func (t *Lock) onCallback() func(LockCallbackStartInfo) func(LockCallbackDoneInfo) {
	if t == nil {
		return nil
	}

	return t.OnCallback
}

// LockOnLock starts the OnLock event chain; the returned closures are never nil
func LockOnLock(t *Lock, id, op string, exclusive bool) func(wait time.Duration) func(held time.Duration) {
	fn := t.onLock()
	if fn == nil {
		return func(time.Duration) func(time.Duration) {
			return func(time.Duration) {}
		}
	}
	res := fn(LockStartInfo{
		ID:        id,
		Op:        op,
		Exclusive: exclusive,
	})

	return func(wait time.Duration) func(time.Duration) {
		if res == nil {
			return func(time.Duration) {}
		}
		res := res(LockAcquiredInfo{Wait: wait})

		return func(held time.Duration) {
			if res != nil {
				res(LockReleasedInfo{Held: held})
			}
		}
	}
}

// LockOnCallback starts the OnCallback event; the returned closure is never nil
func LockOnCallback(t *Lock, id string, exclusive bool) func(wait, held time.Duration, err error, panicked bool) {
	fn := t.onCallback()
	if fn == nil {
		return func(time.Duration, time.Duration, error, bool) {}
	}
	res := fn(LockCallbackStartInfo{
		ID:        id,
		Exclusive: exclusive,
	})

	return func(wait, held time.Duration, err error, panicked bool) {
		if res != nil {
			res(LockCallbackDoneInfo{
				Wait:     wait,
				Held:     held,
				Error:    err,
				Panicked: panicked,
			})
		}
	}
}
