package runtime

import (
	"chat-relay/errors"
	"chat-relay/mocks"
	stderrors "errors"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOutbox_Writes_In_Order_Then_Closes_Transport(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockLineConn(ctrl)
	outbox := NewOutbox(conn, 8, logs.GetLoggerFromLevel(slog.LevelDebug))

	// Given three lines are written in order and the transport is closed last
	gomock.InOrder(
		conn.EXPECT().WriteLine("one").Return(nil),
		conn.EXPECT().WriteLine("two").Return(nil),
		conn.EXPECT().WriteLine("three").Return(nil),
		conn.EXPECT().Close().Return(nil),
	)

	// When lines are queued before the writer starts and the outbox is closed
	req.NoError(outbox.Deliver("one"))
	req.NoError(outbox.Deliver("two"))
	req.NoError(outbox.Deliver("three"))
	outbox.Close()
	go outbox.Run()

	// Then queued lines are still flushed
	outbox.Wait()
}

func TestOutbox_Full_Queue_Drops_Line(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockLineConn(ctrl)
	outbox := NewOutbox(conn, 1, logs.GetLoggerFromLevel(slog.LevelDebug))

	// Given no writer is draining the queue
	req.NoError(outbox.Deliver("first"))

	// When the queue is full
	err := outbox.Deliver("second")

	// Then the caller is not blocked
	req.ErrorIs(err, errors.ErrSinkFull)
}

func TestOutbox_Deliver_After_Close(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockLineConn(ctrl)
	outbox := NewOutbox(conn, 4, logs.GetLoggerFromLevel(slog.LevelDebug))

	outbox.Close()
	outbox.Close()

	req.ErrorIs(outbox.Deliver("late"), errors.ErrSinkClosed)
}

func TestOutbox_Write_Failure_Stops_Writer(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockLineConn(ctrl)
	outbox := NewOutbox(conn, 4, logs.GetLoggerFromLevel(slog.LevelDebug))

	// Given the transport breaks on the first write
	gomock.InOrder(
		conn.EXPECT().WriteLine("one").Return(stderrors.New("broken pipe")),
		conn.EXPECT().Close().Return(nil),
	)
	require.NoError(t, outbox.Deliver("one"))
	require.NoError(t, outbox.Deliver("two"))

	// When the writer runs
	go outbox.Run()

	// Then it gives up without writing the second line and without waiting for Close
	outbox.Wait()
}
