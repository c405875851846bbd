/*
Package strada is a small web framework built around an ordered route table.

Routes are registered once at startup and matched in declaration order: the
first pattern that matches the request path and method wins, so overlapping
patterns are resolved by registration order rather than specificity, and
duplicate patterns are allowed (the earlier one always wins). The table is
read-only after startup, so concurrent requests share it without locking.

Patterns are plain path strings. A ":name" segment captures exactly one path
segment, a trailing "*name" segment captures the remainder of the path, and
every other segment matches literally:

	e := strada.New()
	e.Get("/polls/", index).Named("polls.index")
	e.Get("/polls/:id/", detail).Named("polls.detail")
	e.Static("/static", "./public")
	e.Run(":8080")

A path that matches no pattern yields a 404 without invoking any handler; a
path that matches a pattern registered only for other methods yields a 405.
Named routes can be turned back into URLs with Engine.Reverse.
*/
package strada
