package http

import (
	"broadcast-srv/internal/demo"
	"broadcast-srv/internal/model"
	pkgErrors "broadcast-srv/pkg/errors"
	"broadcast-srv/pkg/response"

	"broadcast-srv/internal/post"
	"broadcast-srv/internal/user"
)

type switchUserReq struct {
	UserID int64 `json:"user_id" form:"user_id" binding:"required"`
}

type userItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// currentItem carries the signed-in principal, email included; the user
// list stays id+name only.
type currentItem struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type postItem struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

type indexResp struct {
	Current currentItem `json:"current"`
	Users   []userItem  `json:"users"`
	Post    postItem    `json:"post"`
}

func newIndexResp(out demo.IndexOutput) indexResp {
	users := make([]userItem, len(out.Users))
	for i, u := range out.Users {
		users[i] = newUserItem(u)
	}

	return indexResp{
		Current: currentItem{
			ID:    out.Current.ID,
			Name:  out.Current.Name,
			Email: out.Current.Email,
		},
		Users:   users,
		Post: postItem{
			ID:    out.Post.ID,
			Title: out.Post.Title,
			Body:  out.Post.Body,
		},
	}
}

func newUserItem(u model.User) userItem {
	return userItem{ID: u.ID, Name: u.Name}
}

var notFoundMapping = response.ErrorMapping{
	user.ErrUserNotFound: pkgErrors.NewNotFoundHTTPError("user not found"),
	post.ErrPostNotFound: pkgErrors.NewNotFoundHTTPError("post not found"),
}
