package types

import (
	"fmt"
)

// Glyph - упакованный символ с цветами переднего и заднего плана.
// Формат (от старших к младшим битам, младшие 64):
//
//	[ Bg RGB (24) | Fg RGB (24) | Char (16) ]
//
// Символ ограничен базовой многоязычной плоскостью Unicode, этого хватает
// для ASCII и псевдографики вроде '¡' или '♥'.
type Glyph uint64

const (
	bitsChar  = 16
	bitsColor = 24

	shiftFg = bitsChar
	shiftBg = bitsChar + bitsColor

	maskChar  = (1 << bitsChar) - 1  // 0xFFFF
	maskColor = (1 << bitsColor) - 1 // 0xFFFFFF
)

// Часто используемые цвета (0xRRGGBB).
const (
	ColorBlack   uint32 = 0x000000
	ColorWhite   uint32 = 0xFFFFFF
	ColorYellow  uint32 = 0xFFFF00
	ColorRed     uint32 = 0xFF0000
	ColorMagenta uint32 = 0xFF00FF
	ColorCyan    uint32 = 0x00FFFF
	ColorOrange  uint32 = 0xFFA500
	ColorPink    uint32 = 0xFFC0CB
	ColorGreen   uint32 = 0x00FF00
	ColorGray    uint32 = 0x808080
)

// MakeGlyph создает Glyph. Учитываются младшие 24 бита цветов и 16 бит символа.
//
// Пример:
//
//	// Желтая '@' на черном
//	g := MakeGlyph(0xFFFF00, 0x000000, '@')
func MakeGlyph(fg, bg uint32, char rune) Glyph {
	return Glyph(uint64(bg&maskColor)<<shiftBg |
		uint64(fg&maskColor)<<shiftFg |
		uint64(uint32(char)&maskChar))
}

// Char извлекает символ.
func (g Glyph) Char() rune {
	return rune(g & maskChar)
}

// Fg извлекает цвет символа в формате 0xRRGGBB.
func (g Glyph) Fg() uint32 {
	return uint32(g>>shiftFg) & maskColor
}

// Bg извлекает цвет фона в формате 0xRRGGBB.
func (g Glyph) Bg() uint32 {
	return uint32(g>>shiftBg) & maskColor
}

// WithFg возвращает копию с другим цветом символа.
func (g Glyph) WithFg(fg uint32) Glyph {
	return MakeGlyph(fg, g.Bg(), g.Char())
}

// String реализует fmt.Stringer.
// Формат: "Glyph{char='@', fg=#FFFF00, bg=#000000}"
func (g Glyph) String() string {
	char := g.Char()
	charStr := string(char)

	// Для непечатаемых символов показываем hex
	if char < 32 || char == 127 {
		charStr = fmt.Sprintf("\\x%02X", char)
	}

	return fmt.Sprintf("Glyph{char='%s', fg=%s, bg=#%06X}", charStr, g.HexColor(), g.Bg())
}

// HexColor возвращает HEX цвета символа (например, "#00FF00").
func (g Glyph) HexColor() string {
	return fmt.Sprintf("#%06X", g.Fg())
}
