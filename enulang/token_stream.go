package enulang

type TokenStream interface {
	Current() *Token
	// Peek returns the token after Current.
	Peek() *Token
	Consume()
}

type SliceTokenStream struct {
	tokens []*Token
	idx    int
}

var _ TokenStream = new(SliceTokenStream)

func NewSliceTokenStream(tokens []*Token) *SliceTokenStream {
	return &SliceTokenStream{
		tokens: tokens,
	}
}

func (s *SliceTokenStream) Current() *Token {
	return s.at(s.idx)
}

func (s *SliceTokenStream) Peek() *Token {
	return s.at(s.idx + 1)
}

// at returns an EOF token past the end of the slice.
func (s *SliceTokenStream) at(idx int) *Token {
	if idx >= len(s.tokens) {
		var pos Pos
		if len(s.tokens) > 0 {
			pos = s.tokens[len(s.tokens)-1].Pos
		}
		return &Token{Kind: TokenEOF, Pos: pos}
	}
	return s.tokens[idx]
}

func (s *SliceTokenStream) Consume() {
	if s.idx < len(s.tokens) {
		s.idx++
	}
}
