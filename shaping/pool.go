package shaping

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// Shaping a word needs a small amount of scratch state, which is short-lived.
// To avoid multiple allocation of small objects we will pool it.
type shaperPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalShaperPool *shaperPool

func init() {
	globalShaperPool = &shaperPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			ws := &wordShaper{
				out: make([]rune, 0, 32),
			}
			return ws, nil
		})
	globalShaperPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalShaperPool.opool = pool.NewObjectPool(globalShaperPool.ctx, factory, config)
}

// borrowShaper returns a word shaper from the pool, prepared for word.
func borrowShaper(word []rune) *wordShaper {
	o, err := globalShaperPool.opool.BorrowObject(globalShaperPool.ctx)
	if err != nil {
		tracer().Errorf("cannot borrow shaper from pool: %v", err)
		o = &wordShaper{}
	}
	ws := o.(*wordShaper)
	ws.word = word
	ws.out = ws.out[:0]
	return ws
}

// Clears the shaper and puts it back into the pool.
func (ws *wordShaper) releaseIntoPool() {
	ws.word = nil
	ws.out = ws.out[:0]
	_ = globalShaperPool.opool.ReturnObject(globalShaperPool.ctx, ws)
}
