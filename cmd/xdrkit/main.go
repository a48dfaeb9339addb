package main

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	xdrkit "github.com/reoring/xdrkit"
	"github.com/reoring/xdrkit/stellar"
	"github.com/reoring/xdrkit/strkey"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "decode":
		decodeCmd(os.Args[2:])
	case "encode":
		encodeCmd(os.Args[2:])
	case "strkey":
		strkeyCmd(os.Args[2:])
	case "list":
		listCmd()
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "xdrkit CLI\n\nUsage:\n  xdrkit decode -t TypeName [--hex] [base64-or-hex]\n  xdrkit encode -t TypeName [--hex] [json]\n  xdrkit strkey [address]\n  xdrkit strkey --encode --version NAME --payload HEX\n  xdrkit list\n\nInput is read from the argument if given, otherwise from stdin.")
}

func decodeCmd(args []string) {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	var typeName string
	var useHex bool
	fs.StringVarP(&typeName, "type", "t", "", "registered type name (see: xdrkit list)")
	fs.BoolVar(&useHex, "hex", false, "input is hex instead of base64")
	_ = fs.Parse(args)
	if typeName == "" {
		fs.Usage()
		os.Exit(2)
	}
	c, ok := stellar.Lookup(typeName)
	if !ok {
		fatalf("unknown type %q (see: xdrkit list)", typeName)
	}
	in := readInput(fs.Args())
	var raw []byte
	var err error
	if useHex {
		raw, err = hex.DecodeString(in)
	} else {
		raw, err = base64.StdEncoding.DecodeString(in)
	}
	if err != nil {
		fatalf("decoding input: %v", err)
	}
	v, err := xdrkit.Unmarshal[any](c, raw)
	if err != nil {
		fatalf("decode %s: %v", typeName, err)
	}
	out, err := xdrkit.MarshalJSON[any](c, v)
	if err != nil {
		fatalf("projecting %s: %v", typeName, err)
	}
	fmt.Println(string(out))
}

func encodeCmd(args []string) {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	var typeName string
	var useHex bool
	fs.StringVarP(&typeName, "type", "t", "", "registered type name (see: xdrkit list)")
	fs.BoolVar(&useHex, "hex", false, "output hex instead of base64")
	_ = fs.Parse(args)
	if typeName == "" {
		fs.Usage()
		os.Exit(2)
	}
	c, ok := stellar.Lookup(typeName)
	if !ok {
		fatalf("unknown type %q (see: xdrkit list)", typeName)
	}
	in := readInput(fs.Args())
	v, err := xdrkit.UnmarshalJSON[any](c, []byte(in))
	if err != nil {
		fatalf("parsing JSON for %s: %v", typeName, err)
	}
	raw, err := xdrkit.Marshal[any](c, v)
	if err != nil {
		fatalf("encode %s: %v", typeName, err)
	}
	if useHex {
		fmt.Println(hex.EncodeToString(raw))
	} else {
		fmt.Println(base64.StdEncoding.EncodeToString(raw))
	}
}

func strkeyCmd(args []string) {
	fs := flag.NewFlagSet("strkey", flag.ExitOnError)
	var doEncode bool
	var versionName string
	var payloadHex string
	fs.BoolVar(&doEncode, "encode", false, "encode a (version, payload) pair instead of decoding")
	fs.StringVar(&versionName, "version", "", "version name for --encode (e.g. public_key)")
	fs.StringVar(&payloadHex, "payload", "", "payload hex for --encode")
	_ = fs.Parse(args)

	if doEncode {
		v, ok := versionByName(versionName)
		if !ok {
			fatalf("unknown version %q", versionName)
		}
		payload, err := hex.DecodeString(payloadHex)
		if err != nil {
			fatalf("decoding payload hex: %v", err)
		}
		fmt.Println(strkey.Encode(v, payload))
		return
	}

	in := readInput(fs.Args())
	v, payload, err := strkey.Decode(in)
	if err != nil {
		fatalf("decode address: %v", err)
	}
	fmt.Printf("version: %s\npayload: %s\n", v, hex.EncodeToString(payload))
}

func listCmd() {
	for _, name := range stellar.Names() {
		fmt.Println(name)
	}
}

func versionByName(name string) (strkey.Version, bool) {
	versions := []strkey.Version{
		strkey.VersionPublicKey,
		strkey.VersionMuxedAccount,
		strkey.VersionSeed,
		strkey.VersionPreAuthTx,
		strkey.VersionHashX,
		strkey.VersionSignedPayload,
		strkey.VersionContract,
		strkey.VersionLiquidityPool,
		strkey.VersionClaimableBalance,
	}
	for _, v := range versions {
		if v.String() == name {
			return v, true
		}
	}
	return 0, false
}

func readInput(args []string) string {
	if len(args) > 0 {
		return strings.TrimSpace(args[0])
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatalf("reading stdin: %v", err)
	}
	return strings.TrimSpace(string(b))
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
