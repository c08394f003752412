package postlist

import (
	"fmt"
	"log"
	"slices"

	"github.com/samber/lo"
)

var _ StoreInterface = (*store)(nil) // verify it extends the interface

// store keeps posts by value so nothing handed out aliases its entries.
// It is not safe for concurrent use.
type store struct {
	entries      []Post
	debugEnabled bool
}

// EnableDebug - enables the debug option
func (st *store) EnableDebug(debug bool) StoreInterface {
	st.debugEnabled = debug
	return st
}

func (store *store) PostAll() []Post {
	return slices.Clone(store.entries)
}

func (store *store) PostAppend(post *Post) error {
	if post == nil {
		return ErrPostIsNil
	}

	store.entries = append(store.entries, *post)

	if store.debugEnabled {
		log.Println("post store: appended post", post.ID(), "size", len(store.entries))
	}

	return nil
}

func (store *store) PostCount() int {
	return len(store.entries)
}

func (store *store) PostGet(index int) (*Post, error) {
	if err := store.checkIndex(index); err != nil {
		return nil, err
	}

	post := store.entries[index]
	return &post, nil
}

func (store *store) PostList(options PostQueryOptions) []Post {
	list := lo.Filter(store.entries, func(post Post, _ int) bool {
		if options.UserID != 0 && post.UserID() != options.UserID {
			return false
		}

		if len(options.UserIDIn) > 0 && !lo.Contains(options.UserIDIn, post.UserID()) {
			return false
		}

		if options.ApprovedOnly && !post.IsApproved() {
			return false
		}

		if !options.CreatedAtGreaterThan.IsZero() && !post.CreatedAt().After(options.CreatedAtGreaterThan) {
			return false
		}

		if !options.CreatedAtLessThan.IsZero() && !post.CreatedAt().Before(options.CreatedAtLessThan) {
			return false
		}

		return true
	})

	if options.Offset > 0 {
		list = lo.Drop(list, options.Offset)
	}

	if options.Limit > 0 {
		list = lo.Slice(list, 0, options.Limit)
	}

	return list
}

func (store *store) PostListApproved() []Post {
	return lo.Filter(store.entries, func(post Post, _ int) bool {
		return post.IsApproved()
	})
}

func (store *store) PostListByUserID(userID int) []Post {
	return lo.Filter(store.entries, func(post Post, _ int) bool {
		return post.UserID() == userID
	})
}

func (store *store) PostRemoveAt(index int) error {
	if err := store.checkIndex(index); err != nil {
		return err
	}

	store.entries = slices.Delete(store.entries, index, index+1)

	if store.debugEnabled {
		log.Println("post store: removed index", index, "size", len(store.entries))
	}

	return nil
}

func (store *store) PostReplaceAt(index int, post *Post) error {
	if err := store.checkIndex(index); err != nil {
		return err
	}

	if post == nil {
		return ErrPostIsNil
	}

	store.entries[index] = *post

	if store.debugEnabled {
		log.Println("post store: replaced index", index, "with post", post.ID())
	}

	return nil
}

// PostSortByCreatedAt orders the entries oldest first. Posts created at the
// same instant keep their relative order.
func (store *store) PostSortByCreatedAt() {
	slices.SortStableFunc(store.entries, func(a, b Post) int {
		return a.CreatedAt().Compare(b.CreatedAt())
	})

	if store.debugEnabled {
		log.Println("post store: sorted", len(store.entries), "posts by creation date")
	}
}

func (store *store) PostTitles() []string {
	return lo.Map(store.entries, func(post Post, _ int) string {
		return post.Title()
	})
}

func (store *store) checkIndex(index int) error {
	if index < 0 || index >= len(store.entries) {
		return fmt.Errorf("index %d, size %d: %w", index, len(store.entries), ErrIndexOutOfRange)
	}

	return nil
}
