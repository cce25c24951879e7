package seed

import (
	"context"

	"broadcast-srv/internal/model"
	postRepo "broadcast-srv/internal/post/repository"
	userRepo "broadcast-srv/internal/user/repository"
	pkgLog "broadcast-srv/pkg/log"
)

// demoUsers is the fixed demo dataset: two users, each owning one post.
var demoUsers = []struct {
	user model.User
	post postRepo.CreateOptions
}{
	{
		user: model.User{Name: "Alice", Email: "alice@example.com"},
		post: postRepo.CreateOptions{Title: "Alice's First Post", Body: "This post belongs to Alice."},
	},
	{
		user: model.User{Name: "Bob", Email: "bob@example.com"},
		post: postRepo.CreateOptions{Title: "Bob's First Post", Body: "This post belongs to Bob."},
	},
}

// Run seeds the demo dataset when the users table is empty. Re-running
// against a populated database is a no-op.
func Run(ctx context.Context, l pkgLog.Logger, users userRepo.Repository, posts postRepo.Repository) error {
	count, err := users.Count(ctx)
	if err != nil {
		l.Errorf(ctx, "internal.seed.Run: %v", err)
		return err
	}
	if count > 0 {
		l.Debugf(ctx, "Seed skipped, %d users present", count)
		return nil
	}

	for _, d := range demoUsers {
		usr, err := users.Create(ctx, userRepo.CreateOptions{User: d.user})
		if err != nil {
			l.Errorf(ctx, "internal.seed.Run: %v", err)
			return err
		}

		p := d.post
		p.UserID = usr.ID
		if _, err := posts.Create(ctx, p); err != nil {
			l.Errorf(ctx, "internal.seed.Run: %v", err)
			return err
		}

		l.Infof(ctx, "Seeded user %s (id %d) with one post", usr.Name, usr.ID)
	}

	return nil
}
