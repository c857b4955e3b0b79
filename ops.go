package locked

// Op names a container operation and the lock mode it requires
type Op struct {
	name string
	mode Mode
}

// NewOp describes an operation for custom wrappers built with Do, Do2 and Exec
func NewOp(name string, mode Mode) Op {
	return Op{name: name, mode: mode}
}

func (op Op) Name() string {
	return op.name
}

func (op Op) Mode() Mode {
	return op.mode
}

func (op Op) String() string {
	return op.name + "(" + op.mode.String() + ")"
}

// Observers
var (
	OpEmpty      = NewOp("empty", ModeShared)
	OpSize       = NewOp("size", ModeShared)
	OpMaxSize    = NewOp("max_size", ModeShared)
	OpCapacity   = NewOp("capacity", ModeShared)
	OpAt         = NewOp("at", ModeShared)
	OpGet        = NewOp("get", ModeShared)
	OpData       = NewOp("data", ModeShared)
	OpFront      = NewOp("front", ModeShared)
	OpBack       = NewOp("back", ModeShared)
	OpFind       = NewOp("find", ModeShared)
	OpContains   = NewOp("contains", ModeShared)
	OpCount      = NewOp("count", ModeShared)
	OpLowerBound = NewOp("lower_bound", ModeShared)
	OpUpperBound = NewOp("upper_bound", ModeShared)
	OpCBegin     = NewOp("cbegin", ModeShared)
	OpCEnd       = NewOp("cend", ModeShared)
	OpCRBegin    = NewOp("crbegin", ModeShared)
	OpCREnd      = NewOp("crend", ModeShared)
	OpAll        = NewOp("all", ModeShared)
	OpSnapshot   = NewOp("snapshot", ModeShared)
)

// Mutators. Index and the non-const iterators hand out write access to
// elements, so they are exclusive too.
var (
	OpAssign         = NewOp("assign", ModeExclusive)
	OpIndex          = NewOp("index", ModeExclusive)
	OpSet            = NewOp("set", ModeExclusive)
	OpBegin          = NewOp("begin", ModeExclusive)
	OpEnd            = NewOp("end", ModeExclusive)
	OpRBegin         = NewOp("rbegin", ModeExclusive)
	OpREnd           = NewOp("rend", ModeExclusive)
	OpReserve        = NewOp("reserve", ModeExclusive)
	OpResize         = NewOp("resize", ModeExclusive)
	OpShrinkToFit    = NewOp("shrink_to_fit", ModeExclusive)
	OpClear          = NewOp("clear", ModeExclusive)
	OpInsert         = NewOp("insert", ModeExclusive)
	OpInsertOrAssign = NewOp("insert_or_assign", ModeExclusive)
	OpTryEmplace     = NewOp("try_emplace", ModeExclusive)
	OpErase          = NewOp("erase", ModeExclusive)
	OpPushFront      = NewOp("push_front", ModeExclusive)
	OpPopFront       = NewOp("pop_front", ModeExclusive)
	OpPushBack       = NewOp("push_back", ModeExclusive)
	OpPopBack        = NewOp("pop_back", ModeExclusive)
	OpSwap           = NewOp("swap", ModeExclusive)
	OpMerge          = NewOp("merge", ModeExclusive)
	OpExtract        = NewOp("extract", ModeExclusive)
	OpSplice         = NewOp("splice", ModeExclusive)
	OpRemoveIf       = NewOp("remove_if", ModeExclusive)
	OpReverse        = NewOp("reverse", ModeExclusive)
	OpUnique         = NewOp("unique", ModeExclusive)
	OpSort           = NewOp("sort", ModeExclusive)
)

// Ops returns the classification of every built-in operation
func Ops() []Op {
	return []Op{
		OpEmpty, OpSize, OpMaxSize, OpCapacity, OpAt, OpGet, OpData, OpFront, OpBack,
		OpFind, OpContains, OpCount, OpLowerBound, OpUpperBound,
		OpCBegin, OpCEnd, OpCRBegin, OpCREnd, OpAll, OpSnapshot,

		OpAssign, OpIndex, OpSet, OpBegin, OpEnd, OpRBegin, OpREnd,
		OpReserve, OpResize, OpShrinkToFit, OpClear, OpInsert, OpInsertOrAssign,
		OpTryEmplace, OpErase, OpPushFront, OpPopFront, OpPushBack, OpPopBack,
		OpSwap, OpMerge, OpExtract, OpSplice, OpRemoveIf, OpReverse, OpUnique, OpSort,
	}
}
