//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Package position implements board state and the make/unmake protocol.
// The struct shape (mailbox plus per-(color,type) bitboards, cached
// friendly/enemy slider sets, a fixed-growth GameState history stack, and
// a nullable in-check cache) favors cheap incremental updates on DoMove
// over recomputing attack data from scratch each ply. See DESIGN.md.
package position

import (
	"github.com/Rice-Rocket/chess-engine-sub000/internal/attacks"
	. "github.com/Rice-Rocket/chess-engine-sub000/internal/types"
)

// GameState is a per-ply snapshot captured before a move is applied so
// UndoMove can restore it directly.
type GameState struct {
	CapturedType  PieceType
	PrevEpSquare  Square
	PrevCastling  CastlingRights
	PrevFiftyMove int
	PrevKey       Key
}

// Board is the owning aggregate of a chess position: piece placement,
// side to move, castling rights, en-passant target, and move counters.
type Board struct {
	tables  *attacks.Tables
	zobrist *Zobrist

	square  [64]Piece
	pieceBb [2][7]Bitboard // [Color][PieceType], index 0 (NoPieceType) unused
	colorBb [2]Bitboard
	allBb   Bitboard

	friendlyOrtho, friendlyDiag Bitboard
	enemyOrtho, enemyDiag       Bitboard

	kingSquare [2]Square

	sideToMove     Color
	castlingRights CastlingRights
	epSquare       Square
	fiftyMove      int
	plyCount       int
	key            Key

	history           []GameState
	repetitionHistory []Key
	moveLog           []Move

	inCheckCache *bool
}

// NewBoard constructs a board from an external field description: a full
// 64-square mailbox, side to move, castling rights, an en-passant file
// (0 = none, 1..8), and the halfmove (fifty-move) counter. Position
// validity (exactly one king per side, at most 8 pawns per side) is the
// caller's responsibility; see internal/fen.Parse, which returns an error
// instead of panicking here. Neither checks whether the side not to move is
// already in check.
func NewBoard(tables *attacks.Tables, zobrist *Zobrist, squares [64]Piece, sideToMove Color, castling CastlingRights, epFile int, fiftyMove int) *Board {
	b := &Board{
		tables:         tables,
		zobrist:        zobrist,
		square:         squares,
		sideToMove:     sideToMove,
		castlingRights: castling,
		fiftyMove:      fiftyMove,
		epSquare:       SquareNone,
	}
	if epFile >= 1 && epFile <= 8 {
		epRank := Rank6
		if sideToMove == Black {
			epRank = Rank3
		}
		b.epSquare = MakeSquare(File(epFile-1), epRank)
	}
	b.recomputeAggregates()
	b.key = b.computeKey()
	return b
}

// NewStartingBoard builds the standard chess starting position.
func NewStartingBoard(tables *attacks.Tables, zobrist *Zobrist) *Board {
	var squares [64]Piece
	backRank := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f := 0; f < 8; f++ {
		squares[MakeSquare(File(f), Rank1)] = MakePiece(White, backRank[f])
		squares[MakeSquare(File(f), Rank2)] = MakePiece(White, Pawn)
		squares[MakeSquare(File(f), Rank7)] = MakePiece(Black, Pawn)
		squares[MakeSquare(File(f), Rank8)] = MakePiece(Black, backRank[f])
	}
	return NewBoard(tables, zobrist, squares, White, CastlingAll, 0, 0)
}

func (b *Board) recomputeAggregates() {
	b.pieceBb = [2][7]Bitboard{}
	b.colorBb = [2]Bitboard{}
	for s := Square(0); s < 64; s++ {
		p := b.square[s]
		if p == PieceNone {
			continue
		}
		b.pieceBb[p.Color()][p.Type()] = b.pieceBb[p.Color()][p.Type()].PushSquare(s)
		b.colorBb[p.Color()] = b.colorBb[p.Color()].PushSquare(s)
		if p.Type() == King {
			b.kingSquare[p.Color()] = s
		}
	}
	b.allBb = b.colorBb[White] | b.colorBb[Black]
	b.updateSliderCache()
}

// updateSliderCache refreshes the friendly/enemy orthogonal/diagonal slider
// bitboards, which depend on the side to move.
func (b *Board) updateSliderCache() {
	friendly, enemy := b.sideToMove, b.sideToMove.Other()
	b.friendlyOrtho = b.pieceBb[friendly][Rook] | b.pieceBb[friendly][Queen]
	b.friendlyDiag = b.pieceBb[friendly][Bishop] | b.pieceBb[friendly][Queen]
	b.enemyOrtho = b.pieceBb[enemy][Rook] | b.pieceBb[enemy][Queen]
	b.enemyDiag = b.pieceBb[enemy][Bishop] | b.pieceBb[enemy][Queen]
}

func (b *Board) epFileIndex() int {
	if b.epSquare == SquareNone {
		return 0
	}
	return int(b.epSquare.File()) + 1
}

func (b *Board) removePieceAt(s Square) Piece {
	p := b.square[s]
	b.square[s] = PieceNone
	b.pieceBb[p.Color()][p.Type()] = b.pieceBb[p.Color()][p.Type()].PopSquare(s)
	b.colorBb[p.Color()] = b.colorBb[p.Color()].PopSquare(s)
	b.key ^= b.zobrist.piece(p, s)
	return p
}

func (b *Board) putPieceAt(s Square, p Piece) {
	b.square[s] = p
	b.pieceBb[p.Color()][p.Type()] = b.pieceBb[p.Color()][p.Type()].PushSquare(s)
	b.colorBb[p.Color()] = b.colorBb[p.Color()].PushSquare(s)
	b.key ^= b.zobrist.piece(p, s)
	if p.Type() == King {
		b.kingSquare[p.Color()] = s
	}
}

// DoMove applies m to the board. When inSearch is false the move is also
// appended to the repetition window and move log (search calls pass true
// and keep those untouched; search instead drives PushRepetition/
// PopRepetition directly around each node it visits).
func (b *Board) DoMove(m Move, inSearch bool) {
	from, to, flag := m.From(), m.To(), m.Flag()
	color := b.sideToMove
	moving := b.square[from]
	mtype := moving.Type()

	prev := GameState{
		PrevEpSquare:  b.epSquare,
		PrevCastling:  b.castlingRights,
		PrevFiftyMove: b.fiftyMove,
		PrevKey:       b.key,
	}
	oldCastling := b.castlingRights
	oldEpIdx := b.epFileIndex()

	capturedType := NoPieceType

	if flag == FlagEnPassant {
		capSq := MakeSquare(to.File(), from.Rank())
		capturedType = Pawn
		b.removePieceAt(capSq)
	} else if b.square[to] != PieceNone {
		capturedType = b.square[to].Type()
		b.removePieceAt(to)
	}

	b.removePieceAt(from)
	b.putPieceAt(to, moving)

	newEpSquare := SquareNone

	switch flag {
	case FlagCastling:
		rank := from.Rank()
		var rookFrom, rookTo Square
		if to.File() == FileG {
			rookFrom, rookTo = MakeSquare(FileH, rank), MakeSquare(FileF, rank)
		} else {
			rookFrom, rookTo = MakeSquare(FileA, rank), MakeSquare(FileD, rank)
		}
		rook := b.removePieceAt(rookFrom)
		b.putPieceAt(rookTo, rook)
	case FlagPromoQueen, FlagPromoRook, FlagPromoBishop, FlagPromoKnight:
		b.removePieceAt(to)
		b.putPieceAt(to, MakePiece(color, m.PromotionType()))
	case FlagPawnTwoForward:
		newEpSquare = MakeSquare(from.File(), Rank((int(from.Rank())+int(to.Rank()))/2))
	}

	newCastling := b.castlingRights
	if mtype == King {
		if color == White {
			newCastling = newCastling.Without(WhiteKingside).Without(WhiteQueenside)
		} else {
			newCastling = newCastling.Without(BlackKingside).Without(BlackQueenside)
		}
	}
	a1, h1 := MakeSquare(FileA, Rank1), MakeSquare(FileH, Rank1)
	a8, h8 := MakeSquare(FileA, Rank8), MakeSquare(FileH, Rank8)
	if from == a1 || to == a1 {
		newCastling = newCastling.Without(WhiteQueenside)
	}
	if from == h1 || to == h1 {
		newCastling = newCastling.Without(WhiteKingside)
	}
	if from == a8 || to == a8 {
		newCastling = newCastling.Without(BlackQueenside)
	}
	if from == h8 || to == h8 {
		newCastling = newCastling.Without(BlackKingside)
	}

	fiftyMove := b.fiftyMove + 1
	if mtype == Pawn || capturedType != NoPieceType {
		fiftyMove = 0
	}

	b.key ^= b.zobrist.castlingRights(oldCastling) ^ b.zobrist.castlingRights(newCastling)
	newEpIdx := 0
	if newEpSquare != SquareNone {
		newEpIdx = int(newEpSquare.File()) + 1
	}
	b.key ^= b.zobrist.enPassantFile(oldEpIdx) ^ b.zobrist.enPassantFile(newEpIdx)
	b.key ^= b.zobrist.sideToMove

	b.castlingRights = newCastling
	b.epSquare = newEpSquare
	b.fiftyMove = fiftyMove
	b.sideToMove = color.Other()
	b.plyCount++
	b.allBb = b.colorBb[White] | b.colorBb[Black]
	b.updateSliderCache()
	b.inCheckCache = nil

	prev.CapturedType = capturedType
	b.history = append(b.history, prev)

	if !inSearch {
		if mtype == Pawn || capturedType != NoPieceType {
			b.repetitionHistory = b.repetitionHistory[:0]
		}
		b.repetitionHistory = append(b.repetitionHistory, b.key)
		b.moveLog = append(b.moveLog, m)
	}
}

// UndoMove reverses the most recent DoMove. Calling it without a prior
// paired DoMove is a programming error and panics via the
// history-empty assertion.
func (b *Board) UndoMove(m Move) {
	if len(b.history) == 0 {
		panic("position: UndoMove called with empty history")
	}
	n := len(b.history) - 1
	prev := b.history[n]
	b.history = b.history[:n]

	from, to, flag := m.From(), m.To(), m.Flag()
	color := b.sideToMove.Other() // the side that made the move being undone

	switch flag {
	case FlagPromoQueen, FlagPromoRook, FlagPromoBishop, FlagPromoKnight:
		b.removePieceAt(to)
		b.putPieceAt(from, MakePiece(color, Pawn))
	case FlagCastling:
		rank := from.Rank()
		var rookFrom, rookTo Square
		if to.File() == FileG {
			rookFrom, rookTo = MakeSquare(FileH, rank), MakeSquare(FileF, rank)
		} else {
			rookFrom, rookTo = MakeSquare(FileA, rank), MakeSquare(FileD, rank)
		}
		rook := b.removePieceAt(rookTo)
		b.putPieceAt(rookFrom, rook)
		piece := b.removePieceAt(to)
		b.putPieceAt(from, piece)
	default:
		piece := b.removePieceAt(to)
		b.putPieceAt(from, piece)
	}

	if flag == FlagEnPassant {
		capSq := MakeSquare(to.File(), from.Rank())
		b.putPieceAt(capSq, MakePiece(color.Other(), Pawn))
	} else if prev.CapturedType != NoPieceType {
		b.putPieceAt(to, MakePiece(color.Other(), prev.CapturedType))
	}

	b.castlingRights = prev.PrevCastling
	b.epSquare = prev.PrevEpSquare
	b.fiftyMove = prev.PrevFiftyMove
	b.key = prev.PrevKey
	b.sideToMove = color
	b.plyCount--
	b.allBb = b.colorBb[White] | b.colorBb[Black]
	b.updateSliderCache()
	b.inCheckCache = nil

	if len(b.moveLog) > 0 && b.moveLog[len(b.moveLog)-1] == m {
		b.moveLog = b.moveLog[:len(b.moveLog)-1]
		if len(b.repetitionHistory) > 0 {
			b.repetitionHistory = b.repetitionHistory[:len(b.repetitionHistory)-1]
		}
	}
}

// DoNullMove flips the side to move without touching any piece, used only
// by search. A side can never be in check immediately after its opponent
// was forced to pass, so the in-check cache is set to false rather than
// invalidated.
func (b *Board) DoNullMove() GameState {
	prev := GameState{PrevEpSquare: b.epSquare, PrevCastling: b.castlingRights, PrevFiftyMove: b.fiftyMove, PrevKey: b.key}
	oldEpIdx := b.epFileIndex()
	b.key ^= b.zobrist.enPassantFile(oldEpIdx) ^ b.zobrist.enPassantFile(0)
	b.key ^= b.zobrist.sideToMove
	b.epSquare = SquareNone
	b.sideToMove = b.sideToMove.Other()
	b.plyCount++
	b.updateSliderCache()
	falseVal := false
	b.inCheckCache = &falseVal
	return prev
}

// UndoNullMove reverses DoNullMove using the snapshot it returned.
func (b *Board) UndoNullMove(prev GameState) {
	b.epSquare = prev.PrevEpSquare
	b.castlingRights = prev.PrevCastling
	b.fiftyMove = prev.PrevFiftyMove
	b.key = prev.PrevKey
	b.sideToMove = b.sideToMove.Other()
	b.plyCount--
	b.updateSliderCache()
	b.inCheckCache = nil
}

// IsAttacked reports whether sq is attacked by any piece of color by. Used
// for check detection and by move ordering; the move generator does not
// call it. Occupancy includes every piece currently on the board (unlike the
// generator's own enemy-attack-map construction, which deliberately excludes
// the friendly king from blockers; see internal/movegen).
func (b *Board) IsAttacked(sq Square, by Color) bool {
	occ := b.allBb
	if b.tables.GetAttacks(Knight, sq, occ)&b.pieceBb[by][Knight] != 0 {
		return true
	}
	if b.tables.GetAttacks(King, sq, occ)&b.pieceBb[by][King] != 0 {
		return true
	}
	var pawnAttackerSquares Bitboard
	if by == White {
		pawnAttackerSquares = b.tables.PawnAttacks[Black][sq]
	} else {
		pawnAttackerSquares = b.tables.PawnAttacks[White][sq]
	}
	if pawnAttackerSquares&b.pieceBb[by][Pawn] != 0 {
		return true
	}
	if b.tables.GetAttacks(Bishop, sq, occ)&(b.pieceBb[by][Bishop]|b.pieceBb[by][Queen]) != 0 {
		return true
	}
	if b.tables.GetAttacks(Rook, sq, occ)&(b.pieceBb[by][Rook]|b.pieceBb[by][Queen]) != 0 {
		return true
	}
	return false
}

// InCheck reports whether the side to move is in check, using the nullable
// cache invalidated on every mutation.
func (b *Board) InCheck() bool {
	if b.inCheckCache != nil {
		return *b.inCheckCache
	}
	v := b.IsAttacked(b.kingSquare[b.sideToMove], b.sideToMove.Other())
	b.inCheckCache = &v
	return v
}

// HasInsufficientMaterial reports whether neither side has enough material
// left to force checkmate (king and at most one minor piece each).
func (b *Board) HasInsufficientMaterial() bool {
	if (b.pieceBb[White][Pawn] | b.pieceBb[Black][Pawn]) != 0 {
		return false
	}
	if (b.pieceBb[White][Rook] | b.pieceBb[Black][Rook]) != 0 {
		return false
	}
	if (b.pieceBb[White][Queen] | b.pieceBb[Black][Queen]) != 0 {
		return false
	}
	wMinor := b.pieceBb[White][Bishop].PopCount() + b.pieceBb[White][Knight].PopCount()
	bMinor := b.pieceBb[Black][Bishop].PopCount() + b.pieceBb[Black][Knight].PopCount()
	return wMinor <= 1 && bMinor <= 1
}

// CountRepetitions returns how many times the current zobrist key has
// occurred in the repetition window, which covers both the played game
// (pushed by DoMove/UndoMove outside search) and whatever the search stack
// has pushed via PushRepetition for the current line.
func (b *Board) CountRepetitions() int {
	n := 0
	for _, k := range b.repetitionHistory {
		if k == b.key {
			n++
		}
	}
	return n
}

// PushRepetition appends the current key to the repetition window, reset
// first if the move that reached this position was irreversible (a pawn
// move or capture, indicated by the fifty-move counter having just been
// reset to 0). Search calls this once per node at ply > 0, independent of
// DoMove's own inSearch-gated push, so a repetition confined entirely to
// the search tree is visible to CountRepetitions too.
func (b *Board) PushRepetition() {
	if b.fiftyMove == 0 {
		b.repetitionHistory = b.repetitionHistory[:0]
	}
	b.repetitionHistory = append(b.repetitionHistory, b.key)
}

// PopRepetition removes the most recent entry pushed by PushRepetition.
func (b *Board) PopRepetition() {
	if len(b.repetitionHistory) > 0 {
		b.repetitionHistory = b.repetitionHistory[:len(b.repetitionHistory)-1]
	}
}

// --- accessors ---

func (b *Board) Tables() *attacks.Tables        { return b.tables }
func (b *Board) Zobrist() *Zobrist              { return b.zobrist }
func (b *Board) SideToMove() Color              { return b.sideToMove }
func (b *Board) PieceAt(s Square) Piece         { return b.square[s] }
func (b *Board) PieceBb(c Color, pt PieceType) Bitboard { return b.pieceBb[c][pt] }
func (b *Board) ColorBb(c Color) Bitboard       { return b.colorBb[c] }
func (b *Board) AllPieces() Bitboard            { return b.allBb }
func (b *Board) KingSquare(c Color) Square      { return b.kingSquare[c] }
func (b *Board) CastlingRights() CastlingRights { return b.castlingRights }
func (b *Board) EpSquare() Square               { return b.epSquare }
func (b *Board) FiftyMoveCount() int            { return b.fiftyMove }
func (b *Board) PlyCount() int                  { return b.plyCount }
func (b *Board) Key() Key                       { return b.key }
func (b *Board) MoveLog() []Move                { return b.moveLog }

func (b *Board) FriendlyOrthogonalSliders() Bitboard { return b.friendlyOrtho }
func (b *Board) FriendlyDiagonalSliders() Bitboard   { return b.friendlyDiag }
func (b *Board) EnemyOrthogonalSliders() Bitboard    { return b.enemyOrtho }
func (b *Board) EnemyDiagonalSliders() Bitboard      { return b.enemyDiag }

// RecomputeKey recomputes the zobrist key from scratch; exposed so tests
// can check it against the incrementally maintained Key().
func (b *Board) RecomputeKey() Key {
	return b.computeKey()
}
