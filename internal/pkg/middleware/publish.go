// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marmotedu/component-base/pkg/json"

	"github.com/marmotedu/coffeeshop/pkg/log"
	"github.com/marmotedu/coffeeshop/pkg/storage"
)

// NotificationCommand defines a new command type.
type NotificationCommand string

// NoticeDrinksChanged is published after the drink menu changed.
const NoticeDrinksChanged NotificationCommand = "drinks_changed"

// Notification is a notification message published on the change channel.
type Notification struct {
	Command NotificationCommand `json:"command"`
	Method  string              `json:"method"`
}

// Publish publish a redis event to specified redis channel when some action occurred.
func Publish(publisher storage.Publisher, channel string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() != http.StatusOK {
			log.L(c).Debugf("request failed with http status code `%d`, ignore publish message", c.Writer.Status())

			return
		}

		notify(c, publisher, channel, c.Request.Method)
	}
}

func notify(ctx context.Context, publisher storage.Publisher, channel string, method string) {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch:
		message, _ := json.Marshal(Notification{Command: NoticeDrinksChanged, Method: method})

		if err := publisher.Publish(ctx, channel, string(message)); err != nil {
			log.L(ctx).Errorw("publish redis message failed", "error", err.Error())

			return
		}
		log.L(ctx).Debugw("publish redis message", "method", method, "command", NoticeDrinksChanged)
	default:
	}
}
