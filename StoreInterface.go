package postlist

type StoreInterface interface {
	EnableDebug(debug bool) StoreInterface

	PostAll() []Post
	PostAppend(post *Post) error
	PostCount() int
	PostGet(index int) (*Post, error)
	PostList(options PostQueryOptions) []Post
	PostListApproved() []Post
	PostListByUserID(userID int) []Post
	PostRemoveAt(index int) error
	PostReplaceAt(index int, post *Post) error
	PostSortByCreatedAt()
	PostTitles() []string
}
