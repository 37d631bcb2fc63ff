//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Package fen reads and writes Forsyth-Edwards Notation, the standard
// external text format for a chess position.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Rice-Rocket/chess-engine-sub000/internal/attacks"
	"github.com/Rice-Rocket/chess-engine-sub000/internal/position"
	. "github.com/Rice-Rocket/chess-engine-sub000/internal/types"
)

// StartFen is the standard starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var pieceLetters = map[byte]PieceType{
	'p': Pawn, 'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen, 'k': King,
}

// Parse decodes a FEN string into a Board. It returns an error rather than
// panicking on any malformed field.
func Parse(tables *attacks.Tables, zobrist *position.Zobrist, fenStr string) (*position.Board, error) {
	fields := strings.Fields(strings.TrimSpace(fenStr))
	if len(fields) < 4 {
		return nil, fmt.Errorf("fen: expected at least 4 fields, got %d", len(fields))
	}

	squares, err := parsePlacement(fields[0])
	if err != nil {
		return nil, err
	}

	var stm Color
	switch fields[1] {
	case "w":
		stm = White
	case "b":
		stm = Black
	default:
		return nil, fmt.Errorf("fen: invalid side to move %q", fields[1])
	}

	castling, err := parseCastling(fields[2])
	if err != nil {
		return nil, err
	}

	epFile := 0
	if fields[3] != "-" {
		if len(fields[3]) < 1 || fields[3][0] < 'a' || fields[3][0] > 'h' {
			return nil, fmt.Errorf("fen: invalid en-passant square %q", fields[3])
		}
		epFile = int(fields[3][0]-'a') + 1
	}

	fiftyMove := 0
	if len(fields) >= 5 {
		fiftyMove, err = strconv.Atoi(fields[4])
		if err != nil {
			return nil, fmt.Errorf("fen: invalid halfmove clock %q: %w", fields[4], err)
		}
	}

	if err := validatePlacement(squares); err != nil {
		return nil, err
	}

	return position.NewBoard(tables, zobrist, squares, stm, castling, epFile, fiftyMove), nil
}

func parsePlacement(field string) ([64]Piece, error) {
	var squares [64]Piece
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return squares, fmt.Errorf("fen: expected 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := Rank(7 - i)
		file := 0
		for _, c := range rankStr {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				pt, ok := pieceLetters[byte(lowerByte(c))]
				if !ok {
					return squares, fmt.Errorf("fen: invalid piece letter %q", c)
				}
				if file > 7 {
					return squares, fmt.Errorf("fen: rank %d overflows", i+1)
				}
				color := Black
				if c >= 'A' && c <= 'Z' {
					color = White
				}
				squares[MakeSquare(File(file), rank)] = MakePiece(color, pt)
				file++
			}
		}
		if file != 8 {
			return squares, fmt.Errorf("fen: rank %d does not sum to 8 files", i+1)
		}
	}
	return squares, nil
}

func lowerByte(c rune) byte {
	if c >= 'A' && c <= 'Z' {
		return byte(c) + ('a' - 'A')
	}
	return byte(c)
}

func parseCastling(field string) (CastlingRights, error) {
	if field == "-" {
		return CastlingNone, nil
	}
	var cr CastlingRights
	for _, c := range field {
		switch c {
		case 'K':
			cr |= WhiteKingside
		case 'Q':
			cr |= WhiteQueenside
		case 'k':
			cr |= BlackKingside
		case 'q':
			cr |= BlackQueenside
		default:
			return 0, fmt.Errorf("fen: invalid castling letter %q", c)
		}
	}
	return cr, nil
}

func validatePlacement(squares [64]Piece) error {
	var kings [2]int
	var pawns [2]int
	for s := Square(0); s < 64; s++ {
		p := squares[s]
		if p == PieceNone {
			continue
		}
		if p.Type() == King {
			kings[p.Color()]++
		}
		if p.Type() == Pawn {
			pawns[p.Color()]++
			if s.Rank() == Rank1 || s.Rank() == Rank8 {
				return fmt.Errorf("fen: pawn on back rank %s", s)
			}
		}
	}
	if kings[White] != 1 || kings[Black] != 1 {
		return fmt.Errorf("fen: expected exactly one king per side, got white=%d black=%d", kings[White], kings[Black])
	}
	if pawns[White] > 8 || pawns[Black] > 8 {
		return fmt.Errorf("fen: too many pawns, white=%d black=%d", pawns[White], pawns[Black])
	}
	return nil
}

// Write renders b back into FEN. Move counters beyond the halfmove clock
// (fullmove number) aren't tracked by Board, so it is always reported as 1.
func Write(b *position.Board) string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			p := b.PieceAt(MakeSquare(File(f), Rank(r)))
			if p == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.SideToMove() == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	cr := b.CastlingRights()
	if cr == CastlingNone {
		sb.WriteByte('-')
	} else {
		if cr.Has(WhiteKingside) {
			sb.WriteByte('K')
		}
		if cr.Has(WhiteQueenside) {
			sb.WriteByte('Q')
		}
		if cr.Has(BlackKingside) {
			sb.WriteByte('k')
		}
		if cr.Has(BlackQueenside) {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	if b.EpSquare() == SquareNone {
		sb.WriteByte('-')
	} else {
		sb.WriteString(b.EpSquare().String())
	}

	fmt.Fprintf(&sb, " %d 1", b.FiftyMoveCount())
	return sb.String()
}
