package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
)

func captureCommand() (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	return cmd, buf
}

func TestRunEncodePretty(t *testing.T) {
	cmd, buf := captureCommand()
	encodeFormat = "pretty"
	if err := runEncode(cmd, []string{"nullable", "nonnull", "unknown"}); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	want := "payload: 0x0000000000000021\nslots:   3\n"
	if got := buf.String(); got != want {
		t.Fatalf("encode output = %q, want %q", got, want)
	}
}

func TestRunEncodeRejectsBadKind(t *testing.T) {
	cmd, _ := captureCommand()
	encodeFormat = "pretty"
	if err := runEncode(cmd, []string{"nullable", "banana"}); err == nil {
		t.Fatalf("expected an error for an unknown kind name")
	}
}

func TestRunDecodeMatchesEncode(t *testing.T) {
	cmd, buf := captureCommand()
	decodeFormat = "pretty"
	decodeSlots = 3
	if err := runDecode(cmd, []string{"0x21"}); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	want := "slot  0  return    nullable\n" +
		"slot  1  param 0   nonnull\n" +
		"slot  2  param 1   unknown\n"
	if got := buf.String(); got != want {
		t.Fatalf("decode output = %q, want %q", got, want)
	}
}

func TestRunDecodeRejectsOversizedSlotCount(t *testing.T) {
	cmd, _ := captureCommand()
	decodeFormat = "pretty"
	decodeSlots = 33
	if err := runDecode(cmd, []string{"0"}); err == nil {
		t.Fatalf("expected an error for a slot count beyond the payload capacity")
	}
}
