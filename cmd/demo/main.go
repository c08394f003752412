package main

import (
	"fmt"
	"log"

	"github.com/golang-module/carbon/v2"
	"github.com/gouniverse/postlist"
)

func main() {
	store, err := postlist.NewStore(postlist.NewStoreOptions{
		InitialCapacity: 4,
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := createSamplePosts(store); err != nil {
		log.Fatal(err)
	}

	if err := demonstrateListOperations(store); err != nil {
		log.Fatal(err)
	}
}

func createSamplePosts(store postlist.StoreInterface) error {
	now := carbon.Now()

	posts := []*postlist.Post{
		postlist.NewPost(1, 1, now.StdTime()).
			SetTitle("Java Basics").
			SetContent("Learn Java fundamentals").
			SetApproved(true),
		postlist.NewPost(2, 1, now.SubDays(1).StdTime()).
			SetTitle("Spring Boot").
			SetContent("Introduction to Spring Boot"),
		postlist.NewPost(3, 2, now.SubDays(2).StdTime()).
			SetTitle("Microservices").
			SetContent("Building microservices with Spring").
			SetApproved(true),
		postlist.NewPost(4, 2, now.SubDays(3).StdTime()).
			SetTitle("JPA Basics").
			SetContent("Learn JPA and Hibernate").
			SetApproved(true),
	}

	for _, post := range posts {
		if err := store.PostAppend(post); err != nil {
			return err
		}
	}

	fmt.Println("Sample posts created. Total posts:", store.PostCount())
	return nil
}

func demonstrateListOperations(store postlist.StoreInterface) error {
	fmt.Println()
	fmt.Println("--- Demonstrating List Operations ---")

	first, err := store.PostGet(0)
	if err != nil {
		return err
	}
	fmt.Println("First post:", first.Title())

	updated := postlist.NewPost(2, 1, carbon.Now().StdTime()).
		SetTitle("Spring Boot Advanced").
		SetContent("Advanced Spring Boot topics").
		SetApproved(true)
	if err := store.PostReplaceAt(1, updated); err != nil {
		return err
	}
	second, err := store.PostGet(1)
	if err != nil {
		return err
	}
	fmt.Println("Updated second post:", second.Title())

	if err := store.PostRemoveAt(3); err != nil {
		return err
	}
	fmt.Println("Removed last post. New size:", store.PostCount())

	fmt.Println()
	fmt.Println("All posts:")
	for _, post := range store.PostAll() {
		fmt.Println(post.Title())
	}

	fmt.Println()
	fmt.Println("Approved posts:", len(store.PostListApproved()))
	fmt.Println("All titles:", store.PostTitles())

	store.PostSortByCreatedAt()
	fmt.Println()
	fmt.Println("Sorted posts by creation date:")
	for _, post := range store.PostAll() {
		fmt.Printf("%s: %s (%s)\n", post.CreatedAtCarbon().ToDateTimeString(), post.Title(), post.Slug())
	}

	userID := 1
	fmt.Println()
	fmt.Printf("Posts by user %d: %d\n", userID, len(store.PostListByUserID(userID)))

	return nil
}
