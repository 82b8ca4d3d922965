package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/iov-one/adminnft/errors"
)

// collectItems returns all btree items within [start, end) in ascending
// order. A nil start or end means unbounded on that side.
func collectItems(bt *btree.BTree, start, end []byte) []keyer {
	var items []keyer
	collect := func(i btree.Item) bool {
		items = append(items, i.(keyer))
		return true
	}
	switch {
	case start == nil && end == nil:
		bt.Ascend(collect)
	case start == nil:
		bt.AscendLessThan(bkey{end}, collect)
	case end == nil:
		bt.AscendGreaterOrEqual(bkey{start}, collect)
	default:
		bt.AscendRange(bkey{start}, bkey{end}, collect)
	}
	return items
}

// cacheIterator merges the cached items with the parent iterator. Cached
// values shadow the parent ones and deleted items hide them.
type cacheIterator struct {
	items     []keyer
	idx       int
	ascending bool

	parent     Iterator
	parentDone bool
	// pending is set when pkey and pvalue hold a value read from the
	// parent that was not returned yet.
	pending bool
	pkey    []byte
	pvalue  []byte
}

var _ Iterator = (*cacheIterator)(nil)

func newCacheIterator(items []keyer, parent Iterator, ascending bool) *cacheIterator {
	return &cacheIterator{
		items:     items,
		ascending: ascending,
		parent:    parent,
	}
}

func (c *cacheIterator) Next() ([]byte, []byte, error) {
	for {
		if err := c.fillParent(); err != nil {
			return nil, nil, err
		}

		hasOwn := c.idx < len(c.items)
		switch {
		case !hasOwn && !c.pending:
			return nil, nil, errors.ErrIteratorDone
		case !hasOwn:
			return c.takeParent()
		case !c.pending:
			if k, v, ok := c.takeOwn(); ok {
				return k, v, nil
			}
			continue
		}

		cmp := bytes.Compare(c.items[c.idx].Key(), c.pkey)
		if !c.ascending {
			cmp = -cmp
		}
		if cmp > 0 {
			return c.takeParent()
		}
		if cmp == 0 {
			// Cached value overwrites the parent one.
			c.pending = false
		}
		if k, v, ok := c.takeOwn(); ok {
			return k, v, nil
		}
	}
}

func (c *cacheIterator) fillParent() error {
	if c.pending || c.parentDone {
		return nil
	}
	k, v, err := c.parent.Next()
	if err != nil {
		if errors.ErrIteratorDone.Is(err) {
			c.parentDone = true
			return nil
		}
		return err
	}
	c.pending = true
	c.pkey, c.pvalue = k, v
	return nil
}

func (c *cacheIterator) takeParent() ([]byte, []byte, error) {
	c.pending = false
	return c.pkey, c.pvalue, nil
}

// takeOwn advances over the current cached item. It returns false if that
// item marks a deletion.
func (c *cacheIterator) takeOwn() ([]byte, []byte, bool) {
	item := c.items[c.idx]
	c.idx++
	set, ok := item.(setItem)
	if !ok {
		return nil, nil, false
	}
	return set.Key(), set.value, true
}

func (c *cacheIterator) Release() {
	c.parent.Release()
	c.items = nil
}
