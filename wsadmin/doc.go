// Package wsadmin parses the text printed by WebSphere wsadmin commands.
//
// AdminConfig.list and AdminControl.queryNames print one entry per line,
// while attributes that hold several values are printed as a bracketed,
// space separated list. ToList turns either form into a slice of tokens.
// ParseAttributes handles the nested [name value] listing of
// AdminConfig.show.
package wsadmin
