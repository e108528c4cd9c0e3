package api

import (
	"context"
	"encoding/json"
	"math/rand"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sqlc-dev/pqtype"

	"github.com/Numeratus/Battleship/db/sqlc"
	"github.com/Numeratus/Battleship/internal/logger"
	mb "github.com/Numeratus/Battleship/models/battleship"
	mc "github.com/Numeratus/Battleship/models/connection"
)

const (
	URLQuerySessionIDKeyword string = "sessionID"
)

var upgrader = websocket.Upgrader{

	// good average time since this is not a high-latency operation such as video streaming
	HandshakeTimeout: time.Second * 5,

	// probably more than enough but this is a good average size
	ReadBufferSize:  2048,
	WriteBufferSize: 2048,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type RequestProcessor struct {
	sessionManager mc.SessionManager
	gameManager    mb.GameManager
	q              sqlc.Querier
	ipnet          net.IPNet
}

func NewRequestProcessor(
	sessionManager mc.SessionManager,
	gameManager mb.GameManager,
	q sqlc.Querier,
) RequestProcessor {
	rp := RequestProcessor{
		sessionManager: sessionManager,
		gameManager:    gameManager,
		q:              q,
	}

	rp.ipnet = serverIpNet()
	return rp
}

// serverIpNet picks the first up, non-loopback IPv4 interface.
// Loopback is the fallback so the process still runs in
// environments without an external interface.
func serverIpNet() net.IPNet {
	ifaces, err := net.Interfaces()
	if err == nil {
		for _, iface := range ifaces {
			if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
				continue
			}

			addrs, err := iface.Addrs()
			if err != nil {
				continue
			}

			for _, addr := range addrs {
				ipnet, ok := addr.(*net.IPNet)
				if ok && ipnet.IP.To4() != nil && !ipnet.IP.IsLoopback() {
					return *ipnet
				}
			}
		}
	}

	return net.IPNet{IP: net.IPv4(127, 0, 0, 1), Mask: net.CIDRMask(32, 32)}
}

// Expose this method to use it in testing
func (rp RequestProcessor) GetIpNet() net.IPNet {
	return rp.ipnet
}

func (rp RequestProcessor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// use Upgrade method to make a websocket connection
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Errorln(err)
		http.Error(w, "could not open websocket connection", http.StatusBadRequest)
		return
	}

	sessionIdQuery := r.URL.Query().Get(URLQuerySessionIDKeyword)
	switch sessionIdQuery {
	case "":
		logger.Log.Infoln("a new connection established\tRemote Addr:", conn.RemoteAddr().String())
		go rp.processSessionRequests(rp.sessionManager.GenerateNewSession(conn))

	default:
		session, err := rp.sessionManager.FindSession(sessionIdQuery)
		if err != nil {
			// This either means an expired session or invalid session ID
			_ = conn.WriteJSON(mc.NewMessage[mc.NoPayload](mc.CodeReceivedInvalidSessionID))
			conn.Close()
			return
		}
		rp.sessionManager.ReconnectSession(session, conn)
	}
}

func (rp *RequestProcessor) processSessionRequests(session *mc.Session) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	defer func() {
		if game := rp.sessionManager.GetSessionGame(session); game != nil {
			rp.gameManager.TerminateGame(game.Uuid())
		}
		if session.Conn() != nil {
			session.Conn().Close()
		}
		rp.sessionManager.TerminateSession(session)
	}()

	resp := mc.NewMessage[mc.RespSessionId](mc.CodeSessionID)
	resp.AddPayload(mc.RespSessionId{SessionID: session.Id()})
	if err := rp.sessionManager.WriteToSessionConn(session, resp, mc.MessageTypeJSON); err != nil {
		return
	}

	serverPqtypeInet := pqtype.Inet{IPNet: rp.ipnet, Valid: true}

sessionLoop:
	for {
		_, payload, err := rp.sessionManager.ReadFromSessionConn(session)
		if err != nil {
			// This error happens after retries. If it's not nil,
			// something was wrong with the session connection and
			// couldn't be resolved.
			break sessionLoop
		}

		var signal mc.Signal
		if err := json.Unmarshal(payload, &signal); err != nil {
			msg := mc.NewMessage[mc.NoPayload](mc.CodeSignalAbsent)
			msg.AddError("incoming req payload must contain 'code' field", "")
			if err = rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		switch signal.Code {

		case mc.CodeCreateGame:
			rp.incrementAnalytics(sqlc.AnalyticsCounterGamesCreated, serverPqtypeInet)

			game, respMsg := NewRequest(payload).HandleCreateGame(rp.gameManager, rng)
			if game != nil {
				rp.sessionManager.SetSessionGame(session, game)
			}

			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodePlaceShip:
			game, ok := rp.sessionGame(session)
			if !ok {
				break sessionLoop
			}
			if game == nil {
				continue sessionLoop
			}

			respMsg := NewRequest(payload).HandlePlaceShip(game)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

			if respMsg.Error == nil && respMsg.Payload.FleetReady {
				startMsg := mc.NewMessage[mc.NoPayload](mc.CodeStartGame)
				if err := rp.sessionManager.WriteToSessionConn(session, startMsg, mc.MessageTypeJSON); err != nil {
					break sessionLoop
				}
			}

		case mc.CodePlaceFleetRandom:
			game, ok := rp.sessionGame(session)
			if !ok {
				break sessionLoop
			}
			if game == nil {
				continue sessionLoop
			}

			respMsg := NewRequest(payload).HandlePlaceFleetRandom(game)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

			startMsg := mc.NewMessage[mc.NoPayload](mc.CodeStartGame)
			if err := rp.sessionManager.WriteToSessionConn(session, startMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodeAttack:
			game, ok := rp.sessionGame(session)
			if !ok {
				break sessionLoop
			}
			if game == nil {
				continue sessionLoop
			}

			respMsg := NewRequest(payload).HandleAttack(game)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

			if respMsg.Error == nil && respMsg.Payload.GameOver {
				endMsg := mc.NewMessage[mc.RespEndGame](mc.CodeEndGame)
				endMsg.AddPayload(mc.RespEndGame{PlayerMatchStatus: game.HumanPlayer().MatchStatus()})
				if err := rp.sessionManager.WriteToSessionConn(session, endMsg, mc.MessageTypeJSON); err != nil {
					break sessionLoop
				}
			}

		case mc.CodeRematch:
			game, ok := rp.sessionGame(session)
			if !ok {
				break sessionLoop
			}
			if game == nil {
				continue sessionLoop
			}

			rp.incrementAnalytics(sqlc.AnalyticsCounterRematchCalled, serverPqtypeInet)

			respMsg := NewRequest(payload).HandleRematch(game, rng)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		default:
			respInvalidSignal := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
			respInvalidSignal.AddError("", "invalid code in the incoming payload")
			if err := rp.sessionManager.WriteToSessionConn(session, respInvalidSignal, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
		}
	}
}

// sessionGame fetches the game bound to the session. A nil game
// with ok=true means the client skipped create-game; the caller
// answers with an error envelope and keeps the session alive.
func (rp *RequestProcessor) sessionGame(session *mc.Session) (*mb.Game, bool) {
	game := rp.sessionManager.GetSessionGame(session)
	if game != nil {
		return game, true
	}

	msg := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
	msg.AddError("no game exists for this session yet", "create a game first")
	if err := rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
		return nil, false
	}
	return nil, true
}

func (rp *RequestProcessor) incrementAnalytics(counter uint8, serverIpNet pqtype.Inet) {
	if rp.q == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
	defer cancel()

	var err error
	switch counter {
	case sqlc.AnalyticsCounterGamesCreated:
		err = rp.q.AnalyticsIncrementGamesCreatedCount(ctx, serverIpNet)
	case sqlc.AnalyticsCounterRematchCalled:
		err = rp.q.AnalyticsIncrementRematchCalledCount(ctx, serverIpNet)
	}

	if err != nil {
		// for now not killing the game for it
		logger.Log.Errorln(err)
	}
}
