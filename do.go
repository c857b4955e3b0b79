package locked

// Do runs f over the container with the lock held in op's mode
func Do[C, R any](b *Basic[C], op Op, f func(c *C) R) R {
	release := b.acquire(op)
	defer release()

	return f(&b.c)
}

// Do2 is Do for functions with two results, usually a value and an error
func Do2[C, R1, R2 any](b *Basic[C], op Op, f func(c *C) (R1, R2)) (R1, R2) {
	release := b.acquire(op)
	defer release()

	return f(&b.c)
}

// Exec is Do for functions without results
func Exec[C any](b *Basic[C], op Op, f func(c *C)) {
	release := b.acquire(op)
	defer release()

	f(&b.c)
}

// ExecPair runs f over the containers of b and other with both locks held in
// op's mode. The locks are taken in a fixed order, so two concurrent calls
// over the same pair in opposite directions do not deadlock. If b and other
// are the same wrapper its lock is taken once and f sees the container twice.
func ExecPair[C any](b, other *Basic[C], op Op, f func(c, other *C)) {
	if b == other {
		Exec(b, op, func(c *C) {
			f(c, c)
		})

		return
	}

	first, second := b, other
	if !lockedBefore(b, other) {
		first, second = other, b
	}
	releaseFirst := first.acquire(op)
	defer releaseFirst()
	releaseSecond := second.acquire(op)
	defer releaseSecond()

	f(&b.c, &other.c)
}
