package roster

// CodeColor cores de uma célula por código de faixa, em hexadecimal RRGGBB
// sem '#'. A mesma tabela vale para a matriz em tela e para PDF/XLSX.
type CodeColor struct {
	Fill string
	Text string
}

// colorMap paleta fixa por código
var colorMap = map[string]CodeColor{
	"SN":  {Fill: "DBEAFE", Text: "1D4ED8"},
	"SD":  {Fill: "FEF3C7", Text: "B45309"},
	"SDN": {Fill: "EDE9FE", Text: "5B21B6"},
}

// defaultColor cor neutra para códigos fora da paleta
var defaultColor = CodeColor{Fill: "F1F5F9", Text: "1E293B"}

// ColorFor devolve as cores do código, caindo na cor neutra quando o
// código não tem entrada própria
func ColorFor(code string) CodeColor {
	if c, ok := colorMap[code]; ok {
		return c
	}
	return defaultColor
}

// hexRGB decompõe um hexadecimal RRGGBB em componentes 0..255
func hexRGB(hex string) (int, int, int) {
	if len(hex) != 6 {
		return 0, 0, 0
	}
	h := func(b byte) int {
		switch {
		case b >= '0' && b <= '9':
			return int(b - '0')
		case b >= 'a' && b <= 'f':
			return int(b-'a') + 10
		case b >= 'A' && b <= 'F':
			return int(b-'A') + 10
		}
		return 0
	}
	r := h(hex[0])<<4 | h(hex[1])
	g := h(hex[2])<<4 | h(hex[3])
	b := h(hex[4])<<4 | h(hex[5])
	return r, g, b
}

// FillRGB componentes da cor de fundo
func (c CodeColor) FillRGB() (int, int, int) { return hexRGB(c.Fill) }

// TextRGB componentes da cor do texto
func (c CodeColor) TextRGB() (int, int, int) { return hexRGB(c.Text) }
