package connio

import (
	"bufio"
	"bytes"
	"net"
	"strings"
	"sync"
)

const (
	telnetIAC  byte = 255
	telnetDONT byte = 254
	telnetDO   byte = 253
	telnetWONT byte = 252
	telnetWILL byte = 251
	telnetSB   byte = 250
	telnetSE   byte = 240
	telnetNOP  byte = 241
	telnetDM   byte = 242
	telnetBRK  byte = 243
	telnetIP   byte = 244
	telnetAO   byte = 245
	telnetAYT  byte = 246
	telnetEC   byte = 247
	telnetEL   byte = 248
	telnetGA   byte = 249
)

const (
	telnetOptEcho         byte = 1
	telnetOptSuppressGA   byte = 3
	telnetOptTerminalType byte = 24
	telnetOptWindowSize   byte = 31
	telnetOptLineMode     byte = 34
)

var (
	serverSupportedOptions = map[byte]bool{telnetOptSuppressGA: true}
	clientSupportedOptions = map[byte]bool{telnetOptTerminalType: true, telnetOptWindowSize: true}
)

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiDim   = "\x1b[2m"
	ansiCyan  = "\x1b[36m"
	ansiYellow = "\x1b[33m"
)

// renderStyleTags converts the driver's plain style tags into ANSI escapes.
// Unknown tags pass through untouched.
func renderStyleTags(text string) string {
	replacer := strings.NewReplacer(
		"<monospaced>", ansiDim,
		"</monospaced>", ansiReset,
		"<bold>", ansiBold,
		"</bold>", ansiReset,
	)
	return replacer.Replace(text)
}

// TelnetConnection adapts a raw TCP connection speaking the telnet
// protocol to the connio.Connection interface, negotiating the options
// the driver cares about (suppress-GA, terminal type, window size) and
// translating bare newlines to telnet's CR LF on the wire.
type TelnetConnection struct {
	conn   net.Conn
	reader *bufio.Reader

	writeMu sync.Mutex
	width   int
	height  int
	term    string

	mu      sync.Mutex
	pending []string
	broken  bool
	closed  bool
}

// NewTelnetConnection wraps conn, performs the initial telnet handshake,
// and starts the background read loop that feeds PendingInput.
func NewTelnetConnection(conn net.Conn) *TelnetConnection {
	t := &TelnetConnection{
		conn:   conn,
		reader: bufio.NewReader(conn),
		width:  80,
		height: 24,
	}
	t.performHandshake()
	go t.readLoop()
	return t
}

func (t *TelnetConnection) performHandshake() {
	_ = t.writeCommand(telnetWILL, telnetOptSuppressGA)
	_ = t.writeCommand(telnetWONT, telnetOptEcho)
	_ = t.writeCommand(telnetDONT, telnetOptLineMode)
	_ = t.writeCommand(telnetDO, telnetOptTerminalType)
	_ = t.writeCommand(telnetDO, telnetOptWindowSize)
}

func (t *TelnetConnection) writeCommand(cmd, opt byte) error {
	return t.writeRaw([]byte{telnetIAC, cmd, opt})
}

func (t *TelnetConnection) writeRaw(payload []byte) error {
	t.writeMu.Lock()
	defer t.writeMu.Unlock()
	_, err := t.conn.Write(payload)
	return err
}

func translateForTelnet(msg string) []byte {
	var buf bytes.Buffer
	var prev byte
	for i := 0; i < len(msg); i++ {
		b := msg[i]
		switch b {
		case '\n':
			if prev != '\r' {
				buf.WriteByte('\r')
			}
			buf.WriteByte('\n')
		case telnetIAC:
			buf.WriteByte(telnetIAC)
			buf.WriteByte(telnetIAC)
		default:
			buf.WriteByte(b)
		}
		prev = b
	}
	return buf.Bytes()
}

func (t *TelnetConnection) Output(text string) {
	_ = t.writeRaw(translateForTelnet(renderStyleTags(text) + "\r\n"))
}

func (t *TelnetConnection) WriteInputPrompt() {
	_ = t.writeRaw(translateForTelnet(ansiBold + ansiYellow + "> " + ansiReset))
}

func (t *TelnetConnection) ClearScreen() {
	_ = t.writeRaw([]byte("\x1b[2J\x1b[H"))
}

func (t *TelnetConnection) PendingInput() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	lines := t.pending
	t.pending = nil
	return lines
}

func (t *TelnetConnection) InputAvailable() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending) > 0
}

func (t *TelnetConnection) BreakPressed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	b := t.broken
	t.broken = false
	return b
}

func (t *TelnetConnection) Destroy() {
	t.mu.Lock()
	t.closed = true
	t.mu.Unlock()
	_ = t.conn.Close()
}

func (t *TelnetConnection) Closed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closed
}

func (t *TelnetConnection) readLoop() {
	for {
		line, err := t.readLine()
		if err != nil {
			t.mu.Lock()
			t.closed = true
			t.mu.Unlock()
			return
		}
		t.mu.Lock()
		t.pending = append(t.pending, line)
		t.mu.Unlock()
	}
}

func (t *TelnetConnection) readLine() (string, error) {
	var buf bytes.Buffer
	for {
		b, err := t.reader.ReadByte()
		if err != nil {
			return "", err
		}
		switch b {
		case '\r':
			if next, err := t.reader.Peek(1); err == nil && next[0] == '\n' {
				_, _ = t.reader.ReadByte()
			}
			return buf.String(), nil
		case '\n':
			return buf.String(), nil
		case 0x08, 0x7f:
			bs := buf.Bytes()
			if len(bs) > 0 {
				buf.Truncate(len(bs) - 1)
			}
		case 0x00:
		case telnetIAC:
			if err := t.handleIAC(&buf); err != nil {
				return "", err
			}
		default:
			buf.WriteByte(b)
		}
	}
}

func (t *TelnetConnection) handleIAC(buf *bytes.Buffer) error {
	cmd, err := t.reader.ReadByte()
	if err != nil {
		return err
	}
	switch cmd {
	case telnetIAC:
		buf.WriteByte(telnetIAC)
	case telnetDO, telnetDONT, telnetWILL, telnetWONT:
		opt, err := t.reader.ReadByte()
		if err != nil {
			return err
		}
		t.handleNegotiation(cmd, opt)
	case telnetSB:
		return t.handleSubnegotiation()
	case telnetIP:
		t.mu.Lock()
		t.broken = true
		t.mu.Unlock()
	case telnetNOP, telnetDM, telnetBRK, telnetAO, telnetAYT, telnetEC, telnetEL, telnetGA:
	default:
	}
	return nil
}

func (t *TelnetConnection) handleNegotiation(cmd, opt byte) {
	switch cmd {
	case telnetDO:
		if serverSupportedOptions[opt] {
			_ = t.writeCommand(telnetWILL, opt)
		} else {
			_ = t.writeCommand(telnetWONT, opt)
		}
	case telnetDONT:
		_ = t.writeCommand(telnetWONT, opt)
	case telnetWILL:
		if clientSupportedOptions[opt] {
			_ = t.writeCommand(telnetDO, opt)
		} else {
			_ = t.writeCommand(telnetDONT, opt)
		}
	case telnetWONT:
		_ = t.writeCommand(telnetDONT, opt)
	}
}

func (t *TelnetConnection) handleSubnegotiation() error {
	opt, err := t.reader.ReadByte()
	if err != nil {
		return err
	}
	payload := make([]byte, 0, 16)
	for {
		b, err := t.reader.ReadByte()
		if err != nil {
			return err
		}
		if b == telnetIAC {
			esc, err := t.reader.ReadByte()
			if err != nil {
				return err
			}
			if esc == telnetIAC {
				payload = append(payload, telnetIAC)
				continue
			}
			if esc == telnetSE {
				break
			}
			continue
		}
		payload = append(payload, b)
	}
	switch opt {
	case telnetOptTerminalType:
		if len(payload) > 1 && payload[0] == 0 {
			t.term = strings.ToUpper(string(payload[1:]))
		}
	case telnetOptWindowSize:
		if len(payload) >= 4 {
			t.width = int(payload[0])<<8 | int(payload[1])
			t.height = int(payload[2])<<8 | int(payload[3])
		}
	}
	return nil
}

// Size reports the client's negotiated window dimensions.
func (t *TelnetConnection) Size() (int, int) { return t.width, t.height }
