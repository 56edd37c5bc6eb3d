package cmd

import "testing"

func TestStubConfig(t *testing.T) {
	origAddr, origSigs, origNets := stubAddr, stubSignatures, stubNetworks
	defer func() { stubAddr, stubSignatures, stubNetworks = origAddr, origSigs, origNets }()

	stubAddr = "127.0.0.1:0"
	stubSignatures = []string{"alice", "bob"}
	stubNetworks = []string{"10.0.0.0/8", "192.168.1.0/24"}

	cfg, err := stubConfig()
	if err != nil {
		t.Fatalf("stubConfig() failed: %v", err)
	}
	if len(cfg.Signatures) != 2 || len(cfg.Networks) != 2 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestStubConfig_InvalidNetwork(t *testing.T) {
	origNets := stubNetworks
	defer func() { stubNetworks = origNets }()

	stubNetworks = []string{"not-a-cidr"}
	if _, err := stubConfig(); err == nil {
		t.Error("expected an error for an invalid CIDR")
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	for _, name := range []string{"authstub", "clean", "config"} {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == name {
				found = true
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}
