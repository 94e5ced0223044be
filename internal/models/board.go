package models

// Board identifies one discussion board on the site.
type Board struct {
	Name string // display name, e.g. "모두의공원"
	Path string // listing path under the site origin, e.g. "/service/board/park"
}

// Row is one listing entry extracted from a board page.
// Rows are rebuilt on every fetch; position in the slice is their only identity.
type Row struct {
	Title        string
	URL          string // site-relative link to the post
	CommentCount int
	Author       string
	ViewCount    string // localized display value ("1.2 k"), kept verbatim
	Timestamp    string // localized display value, kept verbatim
}

// DefaultBoards is the built-in board registry, in display order.
// A [[boards]] section in the config file replaces it wholesale.
func DefaultBoards() []Board {
	return []Board{
		{Name: "모두의공원", Path: "/service/board/park"},
		{Name: "아무거나질문", Path: "/service/board/kin"},
		{Name: "알뜰구매", Path: "/service/board/jirum"},
		{Name: "새로운소식", Path: "/service/board/news"},
		{Name: "사용기", Path: "/service/board/use"},
	}
}
