// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"

	"github.com/sacha-l/sygma-substrate-pallets/auth"
	"github.com/sacha-l/sygma-substrate-pallets/cli/keygen"
	"github.com/sacha-l/sygma-substrate-pallets/mpc"
	"github.com/sacha-l/sygma-substrate-pallets/types"
)

const committeeKey = "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

type CommandsTestSuite struct {
	suite.Suite
	out *bytes.Buffer
}

func TestRunCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(CommandsTestSuite))
}

func (s *CommandsTestSuite) SetupTest() {
	s.out = &bytes.Buffer{}
	mpcKeyCMD.SetOut(s.out)
	signCMD.SetOut(s.out)
	tokenCMD.SetOut(s.out)
}

func (s *CommandsTestSuite) Test_MpcKey() {
	mpcPrivateKey = committeeKey

	err := mpcKey(mpcKeyCMD, nil)

	s.Nil(err)
	priv, _ := crypto.HexToECDSA(strings.TrimPrefix(committeeKey, "0x"))
	expected := types.NewMpcKey(crypto.PubkeyToAddress(priv.PublicKey))
	s.Contains(s.out.String(), expected.Hex())
}

func (s *CommandsTestSuite) Test_MpcKey_InvalidKey() {
	mpcPrivateKey = "0x1234"

	err := mpcKey(mpcKeyCMD, nil)

	s.NotNil(err)
}

func (s *CommandsTestSuite) Test_Sign() {
	proposals := []*types.Proposal{{
		OriginDomainID: 1,
		DepositNonce:   2,
		ResourceID:     types.ResourceID{31: 3},
		Data:           []byte{1, 2, 3},
	}}
	raw, _ := json.Marshal(proposals)
	proposalsPath = filepath.Join(s.T().TempDir(), "proposals.json")
	s.Nil(os.WriteFile(proposalsPath, raw, 0600))
	signPrivateKey = committeeKey
	chainID = 5
	verifyingContract = "0x6CdE2Cd82a4F8B74693Ff5e194c19CA08c2d1c68"
	bridgeVersion = "3.1.0"

	err := sign(signCMD, nil)

	s.Nil(err)
	signature, err := hexutil.Decode(strings.TrimSpace(s.out.String()))
	s.Nil(err)
	priv, _ := crypto.HexToECDSA(strings.TrimPrefix(committeeKey, "0x"))
	domain := mpc.Domain{ChainID: 5, VerifyingContract: verifyingContract, BridgeVersion: "3.1.0"}
	key := mpc.NewSigner(domain, priv).MpcKey()
	s.True(mpc.NewVerifier(domain).Verify(&key, proposals, signature))
}

func (s *CommandsTestSuite) Test_Sign_MissingFile() {
	signPrivateKey = committeeKey
	proposalsPath = filepath.Join(s.T().TempDir(), "missing.json")

	err := sign(signCMD, nil)

	s.NotNil(err)
}

func (s *CommandsTestSuite) Test_Token_Signed() {
	jwtSecret = "secret"
	account = types.AccountID{1}.Hex()
	role = string(auth.RoleSigned)
	ttl = time.Hour

	err := token(tokenCMD, nil)

	s.Nil(err)
	origin, err := auth.NewTokenIssuer("secret", time.Hour).Parse(strings.TrimSpace(s.out.String()))
	s.Nil(err)
	s.Equal(auth.Signed(types.AccountID{1}), origin)
}

func (s *CommandsTestSuite) Test_Token_Root() {
	jwtSecret = "secret"
	account = ""
	role = string(auth.RoleRoot)
	ttl = time.Hour

	err := token(tokenCMD, nil)

	s.Nil(err)
	origin, err := auth.NewTokenIssuer("secret", time.Hour).Parse(strings.TrimSpace(s.out.String()))
	s.Nil(err)
	s.Equal(auth.Root(), origin)
}

func (s *CommandsTestSuite) Test_Token_UnknownRole() {
	jwtSecret = "secret"
	role = "operator"

	err := token(tokenCMD, nil)

	s.NotNil(err)
}

func (s *CommandsTestSuite) Test_Token_MissingSecretWithoutTerminal() {
	jwtSecret = ""
	role = string(auth.RoleRoot)

	err := token(tokenCMD, nil)

	s.NotNil(err)
}

func (s *CommandsTestSuite) Test_KeygenGenKey() {
	keygen.KeygenCLI.SetOut(s.out)
	keygen.KeygenCLI.SetArgs([]string{"gen-key"})

	err := keygen.KeygenCLI.Execute()

	s.Nil(err)
	s.Contains(s.out.String(), "Private key: 0x")
	s.Contains(s.out.String(), "MPC key: 0x000000000000000000000000")
}
