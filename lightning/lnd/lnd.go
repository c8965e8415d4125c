package lnd

import (
	"context"
	"crypto/x509"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lightningnetwork/lnd/lnrpc"
	"github.com/lightningnetwork/lnd/lnrpc/invoicesrpc"
	"github.com/lightningnetwork/lnd/lnrpc/routerrpc"
	"github.com/lightningnetwork/lnd/lntypes"
	"github.com/lightningnetwork/lnd/macaroons"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/tideswap/tideswap/lightning"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"gopkg.in/macaroon.v2"
)

const paymentTimeout = 5 * time.Minute

type Client struct {
	routerClient    routerrpc.RouterClient
	lndClient       lnrpc.LightningClient
	invoicesClient  invoicesrpc.InvoicesClient
	closeConnection func()
}

type Option func(*Options)

func WithLndEndpoint(endpoint string) Option {
	return func(o *Options) {
		o.lndEndpoint = endpoint
	}
}

func WithMacaroonFilePath(path string) Option {
	return func(o *Options) {
		o.macaroonFilePath = path
	}
}

func WithTLSCertFilePath(path string) Option {
	return func(o *Options) {
		o.tlsCertFilePath = path
	}
}

func WithNetwork(network lightning.Network) Option {
	return func(o *Options) {
		o.network = network
	}
}

type Options struct {
	lndEndpoint      string
	macaroonFilePath string
	tlsCertFilePath  string
	network          lightning.Network
	fs               afero.Fs
}

// NewClient creates a lnd client from macaroon and cert file locations.
// This Client establishes a grpc connection with a lnd node.
func NewClient(ctx context.Context, opts ...Option) (*Client, error) {
	options := Options{
		network: lightning.Mainnet,
		fs:      afero.NewOsFs(),
	}

	for _, opt := range opts {
		opt(&options)
	}

	if options.lndEndpoint == "" {
		options.lndEndpoint = "localhost:10009"
	}
	if options.macaroonFilePath == "" {
		options.macaroonFilePath = "/root/.lnd/data/chain/bitcoin/{Network}/admin.macaroon"
	}
	if options.tlsCertFilePath == "" {
		options.tlsCertFilePath = "/root/.lnd/tls.cert"
	}

	options.macaroonFilePath = strings.Replace(options.macaroonFilePath, "{Network}", string(options.network), -1)

	macaroonFileBytes, err := afero.ReadFile(options.fs, options.macaroonFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed reading macaroon file: %w", err)
	}

	certBytes, err := afero.ReadFile(options.fs, options.tlsCertFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed reading TLS cert file: %w", err)
	}
	creds := credentials.NewClientTLSFromCert(loadCertPool(certBytes), "")

	mac := &macaroon.Macaroon{}
	err = mac.UnmarshalBinary(macaroonFileBytes)
	if err != nil {
		return nil, fmt.Errorf("failed unmarshalling macaroon: %w", err)
	}

	macCred, err := macaroons.NewMacaroonCredential(mac)
	if err != nil {
		return nil, fmt.Errorf("failed creating macaroon credentials: %w", err)
	}

	conn, err := grpc.NewClient(options.lndEndpoint, grpc.WithTransportCredentials(creds), grpc.WithPerRPCCredentials(macCred))
	if err != nil {
		return nil, fmt.Errorf("failed connecting to LND node: %w", err)
	}

	client := &Client{
		routerClient:   routerrpc.NewRouterClient(conn),
		lndClient:      lnrpc.NewLightningClient(conn),
		invoicesClient: invoicesrpc.NewInvoicesClient(conn),
		closeConnection: func() {
			err := conn.Close()
			if err != nil {
				log.WithError(err).Error("error closing connection")
			}
		},
	}

	return client, nil
}

func (c *Client) GetInfo(ctx context.Context) (*lightning.NodeInfo, error) {
	res, err := c.lndClient.GetInfo(ctx, &lnrpc.GetInfoRequest{})
	if err != nil {
		return nil, fmt.Errorf("failed to get node info: %w", err)
	}

	return &lightning.NodeInfo{
		Version:          res.Version,
		BlockHeight:      res.BlockHeight,
		Pubkey:           res.IdentityPubkey,
		URIs:             res.Uris,
		ActiveChannels:   res.NumActiveChannels,
		InactiveChannels: res.NumInactiveChannels,
		PendingChannels:  res.NumPendingChannels,
	}, nil
}

func (c *Client) ListChannels(ctx context.Context) ([]lightning.ChannelBalance, error) {
	res, err := c.lndClient.ListChannels(ctx, &lnrpc.ListChannelsRequest{})
	if err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}

	channels := make([]lightning.ChannelBalance, 0, len(res.Channels))
	for _, channel := range res.Channels {
		channels = append(channels, lightning.ChannelBalance{
			Local:  uint64(channel.LocalBalance),
			Remote: uint64(channel.RemoteBalance),
		})
	}

	return channels, nil
}

// SendPayment pays the invoice and blocks until the payment either settles
// or fails permanently.
func (c *Client) SendPayment(ctx context.Context, paymentRequest string) (*lightning.PaymentResult, error) {
	sendRequest := &routerrpc.SendPaymentRequest{
		PaymentRequest: paymentRequest,
		TimeoutSeconds: int32(paymentTimeout.Seconds()),
	}

	stream, err := c.routerClient.SendPaymentV2(ctx, sendRequest)
	if err != nil {
		return nil, fmt.Errorf("failed to initiate payment: %w", err)
	}

	defer func() {
		if err := stream.CloseSend(); err != nil {
			log.WithError(err).Error("error closing stream for SendPaymentV2")
		}
	}()

	for {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		payment, err := stream.Recv()
		if err != nil {
			return nil, fmt.Errorf("failed to track payment: %w", err)
		}

		log.WithField("payment", payment).Debug("New SendPaymentV2 event")
		switch payment.Status {
		case lnrpc.Payment_SUCCEEDED:
			return &lightning.PaymentResult{
				PaymentHash: payment.PaymentHash,
				Preimage:    payment.PaymentPreimage,
				FeeSats:     uint64(payment.FeeSat),
			}, nil
		case lnrpc.Payment_FAILED:
			return nil, fmt.Errorf("payment failed: %w", errors.New(payment.FailureReason.String()))
		}
	}
}

func (c *Client) AddInvoice(ctx context.Context, amountSats uint64, memo string) (string, error) {
	res, err := c.lndClient.AddInvoice(ctx, &lnrpc.Invoice{
		Value: int64(amountSats),
		Memo:  memo,
	})
	if err != nil {
		return "", fmt.Errorf("failed to add invoice: %w", err)
	}

	return res.PaymentRequest, nil
}

// AddHoldInvoice registers a hold invoice with the node. The invoice is
// accepted but not settled until the preimage is revealed.
func (c *Client) AddHoldInvoice(ctx context.Context, preimageHash lntypes.Hash, amountSats uint64, cltvExpiry uint32, memo string, hints []lightning.RoutingHint) (string, error) {
	res, err := c.invoicesClient.AddHoldInvoice(ctx, &invoicesrpc.AddHoldInvoiceRequest{
		Hash:       preimageHash[:],
		Value:      int64(amountSats),
		CltvExpiry: uint64(cltvExpiry),
		Memo:       memo,
		RouteHints: toRouteHints(hints),
	})
	if err != nil {
		return "", fmt.Errorf("failed to add hold invoice: %w", err)
	}

	return res.PaymentRequest, nil
}

// GetRoutingHints builds hop hints for all channels shared with the routing
// node, using the remote policy of each channel.
func (c *Client) GetRoutingHints(ctx context.Context, routingNode string) ([]lightning.RoutingHint, error) {
	peer, err := hex.DecodeString(routingNode)
	if err != nil {
		return nil, fmt.Errorf("failed to decode routing node pubkey: %w", err)
	}

	res, err := c.lndClient.ListChannels(ctx, &lnrpc.ListChannelsRequest{
		Peer: peer,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list channels with peer: %w", err)
	}

	hints := make([]lightning.RoutingHint, 0, len(res.Channels))
	for _, channel := range res.Channels {
		info, err := c.lndClient.GetChanInfo(ctx, &lnrpc.ChanInfoRequest{
			ChanId: channel.ChanId,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to get channel info: %w", err)
		}

		policy := info.Node1Policy
		if info.Node2Pub == routingNode {
			policy = info.Node2Policy
		}
		if policy == nil {
			continue
		}

		hints = append(hints, lightning.RoutingHint{
			NodeID:                    routingNode,
			ChanID:                    channel.ChanId,
			FeeBaseMsat:               uint32(policy.FeeBaseMsat),
			FeeProportionalMillionths: uint32(policy.FeeRateMilliMsat),
			CltvExpiryDelta:           policy.TimeLockDelta,
		})
	}

	return hints, nil
}

// CloseConnection closes the connection with the lnd node
func (c *Client) CloseConnection() {
	c.closeConnection()
}

func toRouteHints(hints []lightning.RoutingHint) []*lnrpc.RouteHint {
	if len(hints) == 0 {
		return nil
	}

	routeHints := make([]*lnrpc.RouteHint, 0, len(hints))
	for _, hint := range hints {
		routeHints = append(routeHints, &lnrpc.RouteHint{
			HopHints: []*lnrpc.HopHint{{
				NodeId:                    hint.NodeID,
				ChanId:                    hint.ChanID,
				FeeBaseMsat:               hint.FeeBaseMsat,
				FeeProportionalMillionths: hint.FeeProportionalMillionths,
				CltvExpiryDelta:           hint.CltvExpiryDelta,
			}},
		})
	}

	return routeHints
}

// Helper function to load a certificate pool from cert bytes
func loadCertPool(certBytes []byte) *x509.CertPool {
	cp := x509.NewCertPool()
	cp.AppendCertsFromPEM(certBytes)

	return cp
}
