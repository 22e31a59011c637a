package mock

var StargateMockResponse = `{
  "quotes": [
    {
      "route": "stargate/v2/bus",
      "error": null,
      "srcAmount": "10000000",
      "dstAmount": "9990000",
      "dstAmountMin": "9950000",
      "srcToken": "0x833589fcd6edb6e08f4c7c32d4f71b54bda02913",
      "dstToken": "0xaf88d065e77c8cc2239327c5edb3a432268e5831",
      "srcChainKey": "base",
      "dstChainKey": "arbitrum",
      "duration": { "estimated": 180 },
      "fees": [],
      "steps": [
        {
          "type": "bridge",
          "sender": "0x1111111111111111111111111111111111111111",
          "chainKey": "base",
          "transaction": {
            "data": "0xbus",
            "to": "0x27a16dc786820b16e5c9028b75b99f6f604b5d26",
            "from": "0x1111111111111111111111111111111111111111",
            "value": "20000000000000"
          }
        }
      ]
    },
    {
      "route": "stargate/v2/taxi",
      "error": null,
      "srcAmount": "10000000",
      "dstAmount": "9995000",
      "dstAmountMin": "9950000",
      "srcToken": "0x833589fcd6edb6e08f4c7c32d4f71b54bda02913",
      "dstToken": "0xaf88d065e77c8cc2239327c5edb3a432268e5831",
      "srcChainKey": "base",
      "dstChainKey": "arbitrum",
      "duration": { "estimated": 60 },
      "fees": [
        { "token": "0x0000000000000000000000000000000000000000", "chainKey": "base", "amount": "30000000000000", "type": "message" }
      ],
      "steps": [
        {
          "type": "approve",
          "sender": "0x1111111111111111111111111111111111111111",
          "chainKey": "base",
          "transaction": {
            "data": "0x095ea7b3",
            "to": "0x833589fcd6edb6e08f4c7c32d4f71b54bda02913",
            "from": "0x1111111111111111111111111111111111111111"
          }
        },
        {
          "type": "bridge",
          "sender": "0x1111111111111111111111111111111111111111",
          "chainKey": "base",
          "transaction": {
            "data": "0xtaxi",
            "to": "0x27a16dc786820b16e5c9028b75b99f6f604b5d26",
            "from": "0x1111111111111111111111111111111111111111",
            "value": "30000000000000"
          }
        }
      ]
    },
    {
      "route": "cctp/v2",
      "error": { "message": "route unavailable" },
      "srcAmount": "10000000",
      "steps": []
    }
  ]
}`
